package almanac

// Document is the YAML form of an almanac.
type Document struct {
	Seeds  []uint64        `yaml:"seeds,flow"`
	Stages []StageDocument `yaml:"stages"`
}

// StageDocument is the YAML form of one stage.
type StageDocument struct {
	Title    string            `yaml:"title"`
	Mappings []MappingDocument `yaml:"mappings"`
}

// MappingDocument is the YAML form of one mapping. Fields are pointers so a
// missing key can be told apart from an explicit zero.
type MappingDocument struct {
	Destination *uint64 `yaml:"destination"`
	Source      *uint64 `yaml:"source"`
	Length      *uint64 `yaml:"length"`
}
