package almanac

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"almanac/internal/mapping"
)

// LoadFile loads an almanac from path. Files ending in .yaml or .yml are read
// as YAML documents, anything else as text.
func LoadFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// ParseYAML parses an almanac from its YAML document form.
func ParseYAML(data []byte) (*Almanac, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return nil, &ParseError{Kind: KindMalformedInteger, Detail: "invalid YAML value", Err: err}
		}

		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	return FromDocument(&doc)
}

// FromDocument converts a YAML document into an almanac.
func FromDocument(doc *Document) (*Almanac, error) {
	if len(doc.Seeds) == 0 {
		return nil, &ParseError{Kind: KindMissingField, Section: "seeds", Detail: "document has no seeds"}
	}

	if len(doc.Stages) == 0 {
		return nil, &ParseError{Kind: KindMissingField, Section: "stages", Detail: "document has no stages"}
	}

	stages := make([]mapping.RuleSet, 0, len(doc.Stages))

	for i, sd := range doc.Stages {
		if strings.TrimSpace(sd.Title) == "" {
			return nil, &ParseError{Kind: KindMissingField, Detail: fmt.Sprintf("stage %d has no title", i+1)}
		}

		rs := mapping.RuleSet{Title: sd.Title}

		for j, md := range sd.Mappings {
			if md.Destination == nil || md.Source == nil || md.Length == nil {
				return nil, &ParseError{
					Kind:    KindMappingArity,
					Section: sd.Title,
					Detail:  fmt.Sprintf("mapping %d needs destination, source and length", j+1),
				}
			}

			rs.Mappings = append(rs.Mappings, mapping.Mapping{
				Destination: *md.Destination,
				Source:      *md.Source,
				Length:      *md.Length,
			})
		}

		stages = append(stages, rs)
	}

	return New(doc.Seeds, stages...)
}

// ToDocument converts an almanac into its YAML document form.
func ToDocument(a *Almanac) *Document {
	doc := &Document{
		Seeds: append([]uint64(nil), a.Seeds...),
	}

	for _, s := range a.Pipeline.Stages() {
		sd := StageDocument{Title: s.Title, Mappings: make([]MappingDocument, 0, len(s.Mappings))}

		for _, m := range s.Mappings {
			sd.Mappings = append(sd.Mappings, MappingDocument{
				Destination: &m.Destination,
				Source:      &m.Source,
				Length:      &m.Length,
			})
		}

		doc.Stages = append(doc.Stages, sd)
	}

	return doc
}

// MarshalYAML serializes an almanac to YAML.
func MarshalYAML(a *Almanac) ([]byte, error) {
	data, err := yaml.Marshal(ToDocument(a))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal almanac: %w", err)
	}

	return data, nil
}

// WriteFile writes an almanac to path, choosing the format from the file
// extension like LoadFile does.
func WriteFile(a *Almanac, path string) error {
	var data []byte

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var err error
		if data, err = MarshalYAML(a); err != nil {
			return err
		}
	default:
		data = Format(a)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
