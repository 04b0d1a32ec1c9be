package types

import "fmt"

type Diagnostic struct {
	Severity Severity
	Kind     DiagnosticKind
	Message  string
	Source   Source
}

func (d Diagnostic) String() string {
	if d.Source.File == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	if d.Source.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", d.Source.File, d.Source.Line, d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Source.File, d.Severity, d.Message)
}

// Diagnostics is an ordered collection of diagnostics from one round.
type Diagnostics []Diagnostic

func (d Diagnostics) HasErrors() bool {
	for _, item := range d {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (d Diagnostics) OfKind(kind DiagnosticKind) Diagnostics {
	var out Diagnostics
	for _, item := range d {
		if item.Kind == kind {
			out = append(out, item)
		}
	}
	return out
}

func (d Diagnostics) Count(severity Severity) int {
	count := 0
	for _, item := range d {
		if item.Severity == severity {
			count++
		}
	}
	return count
}
