package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"almanac/internal/common"
)

// Diagnostics holds all diagnostic information from validation.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Stage identifies which rule set this relates to (if any).
	Stage string
	// Mapping identifies which mapping line this relates to (if any).
	Mapping string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stage, mapping string) {
	d.Errors = append(d.Errors, newDiagnostic(SeverityError, code, message, stage, mapping))
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stage, mapping string) {
	d.Warnings = append(d.Warnings, newDiagnostic(SeverityWarning, code, message, stage, mapping))
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stage, mapping string) {
	d.Infos = append(d.Infos, newDiagnostic(SeverityInfo, code, message, stage, mapping))
}

func newDiagnostic(sev Severity, code, message, stage, mapping string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Stage:    stage,
		Mapping:  mapping,
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns every diagnostic ordered by descending severity.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Codes returns the codes of all diagnostics in All order.
func (d *Diagnostics) Codes() []string {
	all := d.All()
	codes := make([]string, 0, len(all))

	for _, diag := range all {
		codes = append(codes, diag.Code)
	}

	return codes
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Stage != "" {
		prefix = append(prefix, "["+d.Stage+"]")
	}

	if d.Mapping != "" {
		prefix = append(prefix, d.Mapping)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
