package domain

import "fmt"

// Severity classifies a finding. Only SeverityError affects validity.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Marker returns the short tag printed in front of a finding.
func (s Severity) Marker() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARN"
	case SeverityInfo:
		return "INFO"
	default:
		return "?"
	}
}

// Finding is one validation outcome. Findings are values and are never
// modified after the check that produced them returns.
type Finding struct {
	Severity Severity `json:"severity"`
	Check    string   `json:"check"`
	Path     string   `json:"path,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s", f.Severity.Marker(), f.Message)
}

// Status values reported for a validation run.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)
