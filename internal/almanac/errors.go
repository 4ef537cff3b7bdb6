package almanac

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=ErrorKind -trimprefix=Kind -output=errorkind_string.go

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	_ ErrorKind = iota // zero value is not a valid kind

	// KindMissingField means a required section or line is absent.
	KindMissingField
	// KindMalformedInteger means a token is not an unsigned integer, or a
	// range built from it overflows.
	KindMalformedInteger
	// KindMappingArity means a mapping line does not hold exactly three
	// fields.
	KindMappingArity
)

// Sentinels matched by errors.Is against any *ParseError of the same kind.
var (
	ErrMissingField     = errors.New("missing field")
	ErrMalformedInteger = errors.New("malformed integer")
	ErrMappingArity     = errors.New("mapping must have exactly three fields")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case KindMissingField:
		return ErrMissingField
	case KindMalformedInteger:
		return ErrMalformedInteger
	case KindMappingArity:
		return ErrMappingArity
	default:
		return nil
	}
}

// ParseError describes why an almanac could not be parsed.
type ParseError struct {
	Kind ErrorKind
	// Line is the 1-based input line, or 0 when the failure is not tied to
	// a single line (for example, empty input).
	Line int
	// Section is the title of the section being parsed, if known.
	Section string
	// Token is the offending token, if any.
	Token string
	// Detail is a human-readable explanation.
	Detail string
	// Err is the underlying error, if any.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	var b strings.Builder

	b.WriteString("unable to parse almanac")

	if e.Line > 0 {
		fmt.Fprintf(&b, " at line %d", e.Line)
	}

	if e.Section != "" {
		fmt.Fprintf(&b, " in %q", e.Section)
	}

	if s := e.Kind.sentinel(); s != nil {
		b.WriteString(": " + s.Error())
	} else {
		b.WriteString(": " + e.Kind.String())
	}

	if e.Detail != "" {
		b.WriteString(": " + e.Detail)
	}

	if e.Token != "" {
		fmt.Fprintf(&b, " (token %q)", e.Token)
	}

	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}

	return b.String()
}

// Unwrap exposes both the kind sentinel and the underlying error.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		errs = append(errs, s)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}
