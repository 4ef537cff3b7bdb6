package almanac

import (
	"errors"
	"strconv"
	"strings"

	"almanac/internal/mapping"
)

// Parse parses an almanac in text form.
func Parse(data []byte) (*Almanac, error) {
	p := &parser{}

	for i, raw := range strings.Split(string(data), "\n") {
		if err := p.line(i+1, strings.TrimSpace(raw)); err != nil {
			return nil, err
		}
	}

	return p.finish()
}

// parser consumes the input one line at a time. A blank line closes the
// current section; a title line always opens a new one.
type parser struct {
	label      string
	seeds      []uint64
	seedLine   int
	inSeeds    bool
	stages     []mapping.RuleSet
	current    *mapping.RuleSet
	stageLines []int
}

func (p *parser) line(no int, text string) error {
	switch {
	case text == "":
		p.inSeeds = false
		p.current = nil

		return nil

	case isTitle(text):
		if p.seedLine == 0 {
			return &ParseError{Kind: KindMissingField, Line: no, Detail: "seed line must come before the first stage"}
		}

		p.inSeeds = false
		p.stages = append(p.stages, mapping.RuleSet{Title: strings.TrimSpace(strings.TrimSuffix(text, ":"))})
		p.stageLines = append(p.stageLines, no)
		p.current = &p.stages[len(p.stages)-1]

		return nil

	case p.seedLine == 0:
		return p.seedHeader(no, text)

	case p.inSeeds:
		return p.seedContinuation(no, text)

	case p.current == nil:
		return &ParseError{Kind: KindMissingField, Line: no, Detail: "stage has no title line", Token: text}

	default:
		m, err := parseMapping(no, p.current.Title, text)
		if err != nil {
			return err
		}

		p.current.Mappings = append(p.current.Mappings, m)

		return nil
	}
}

func (p *parser) seedHeader(no int, text string) error {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return &ParseError{Kind: KindMissingField, Line: no, Detail: "seed line holds no seeds", Token: text}
	}

	p.label = fields[0]
	p.seedLine = no
	p.inSeeds = true

	return p.appendSeeds(no, fields[1:])
}

func (p *parser) seedContinuation(no int, text string) error {
	return p.appendSeeds(no, strings.Fields(text))
}

func (p *parser) appendSeeds(no int, tokens []string) error {
	for _, tok := range tokens {
		v, err := parseUint(no, "", tok)
		if err != nil {
			return err
		}

		p.seeds = append(p.seeds, v)
	}

	return nil
}

func (p *parser) finish() (*Almanac, error) {
	if p.seedLine == 0 {
		return nil, &ParseError{Kind: KindMissingField, Detail: "input has no seed line"}
	}

	if len(p.stages) == 0 {
		return nil, &ParseError{Kind: KindMissingField, Detail: "input has no stage sections"}
	}

	a, err := New(p.seeds, p.stages...)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.Line == 0 {
			pe.Line = p.lineFor(pe.Section)
		}

		return nil, err
	}

	a.SeedLabel = p.label

	return a, nil
}

// lineFor returns the title line of the named stage, or the seed line when
// no stage matches.
func (p *parser) lineFor(section string) int {
	if section != "" {
		for i, s := range p.stages {
			if s.Title == section {
				return p.stageLines[i]
			}
		}
	}

	return p.seedLine
}

func parseMapping(no int, section, text string) (mapping.Mapping, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return mapping.Mapping{}, &ParseError{
			Kind:    KindMappingArity,
			Line:    no,
			Section: section,
			Detail:  "got " + strconv.Itoa(len(fields)) + " fields",
			Token:   text,
		}
	}

	var nums [3]uint64

	for i, tok := range fields {
		v, err := parseUint(no, section, tok)
		if err != nil {
			return mapping.Mapping{}, err
		}

		nums[i] = v
	}

	m := mapping.Mapping{Destination: nums[0], Source: nums[1], Length: nums[2]}
	if err := checkMapping(m); err != nil {
		err.Line = no
		err.Section = section

		return mapping.Mapping{}, err
	}

	return m, nil
}

func parseUint(no int, section, tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, &ParseError{Kind: KindMalformedInteger, Line: no, Section: section, Token: tok, Err: err}
	}

	return v, nil
}

func isTitle(text string) bool {
	return strings.HasSuffix(text, ":")
}
