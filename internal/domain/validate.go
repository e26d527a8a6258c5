package domain

import "encoding/json"

// ValidationResult aggregates the findings of one validation run, in the
// order the checks produced them.
type ValidationResult struct {
	Profile  string    `json:"profile"`
	Source   string    `json:"source"`
	Findings []Finding `json:"findings"`
}

// Valid reports whether the run produced no error findings. It is derived
// from Findings on every call.
func (r *ValidationResult) Valid() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Errors returns the error findings in insertion order.
func (r *ValidationResult) Errors() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Warnings returns warning and info findings as one combined sequence,
// in insertion order.
func (r *ValidationResult) Warnings() []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity != SeverityError {
			out = append(out, f)
		}
	}
	return out
}

// Count returns the number of findings with the given severity.
func (r *ValidationResult) Count(sev Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

// Passes is the exit contract: valid, and in strict mode also free of
// warnings and infos.
func (r *ValidationResult) Passes(strict bool) bool {
	if !r.Valid() {
		return false
	}
	return !strict || len(r.Warnings()) == 0
}

// Status returns pass, warn or fail. Strict mode turns warn into fail.
func (r *ValidationResult) Status(strict bool) string {
	switch {
	case !r.Valid():
		return StatusFail
	case len(r.Warnings()) > 0:
		if strict {
			return StatusFail
		}
		return StatusWarn
	default:
		return StatusPass
	}
}

// MarshalJSON adds the derived fields so JSON consumers never see a stale
// validity flag.
func (r *ValidationResult) MarshalJSON() ([]byte, error) {
	errs := r.Errors()
	if errs == nil {
		errs = []Finding{}
	}
	warns := r.Warnings()
	if warns == nil {
		warns = []Finding{}
	}
	findings := r.Findings
	if findings == nil {
		findings = []Finding{}
	}
	return json.Marshal(struct {
		Profile  string    `json:"profile"`
		Source   string    `json:"source"`
		Valid    bool      `json:"valid"`
		Status   string    `json:"status"`
		Errors   []Finding `json:"errors"`
		Warnings []Finding `json:"warnings"`
		Findings []Finding `json:"findings"`
	}{
		Profile:  r.Profile,
		Source:   r.Source,
		Valid:    r.Valid(),
		Status:   r.Status(false),
		Errors:   errs,
		Warnings: warns,
		Findings: findings,
	})
}
