// Package rules runs the design profile rule battery. Every check runs on
// every invocation and records what it finds; nothing short-circuits.
package rules

import (
	"fmt"
	"strings"

	"github.com/openkraft/tokenkraft/internal/domain"
)

// Check names, in execution order.
const (
	checkSections    = "sections"
	checkMeta        = "meta"
	checkColors      = "colors"
	checkContrast    = "contrast"
	checkTypography  = "typography"
	checkSpacing     = "spacing"
	checkBorders     = "borders"
	checkShadows     = "shadows"
	checkAnimation   = "animation"
	checkComponents  = "component-guidelines"
	checkConsistency = "consistency"
)

type check struct {
	name string
	run  func(v *Validator)
}

var battery = []check{
	{checkSections, (*Validator).checkSections},
	{checkMeta, (*Validator).checkMeta},
	{checkColors, (*Validator).checkColors},
	{checkContrast, (*Validator).checkContrast},
	{checkTypography, (*Validator).checkTypography},
	{checkSpacing, (*Validator).checkSpacing},
	{checkBorders, (*Validator).checkBorders},
	{checkShadows, (*Validator).checkShadows},
	{checkAnimation, (*Validator).checkAnimation},
	{checkComponents, (*Validator).checkComponentGuidelines},
	{checkConsistency, (*Validator).checkConsistency},
}

// Validator applies the rule battery to one profile. Its finding list is
// reset on each Validate call.
type Validator struct {
	profile  *domain.Profile
	current  string
	findings []domain.Finding
}

// New binds a validator to p. The profile is only read.
func New(p *domain.Profile) *Validator {
	return &Validator{profile: p}
}

// Validate runs every check in order and returns the collected findings.
func (v *Validator) Validate() *domain.ValidationResult {
	v.findings = nil
	for _, c := range battery {
		v.current = c.name
		c.run(v)
	}
	v.current = ""

	findings := v.findings
	v.findings = nil
	return &domain.ValidationResult{
		Profile:  v.profile.DisplayName(),
		Source:   v.profile.Source,
		Findings: findings,
	}
}

// Validate is shorthand for New(p).Validate().
func Validate(p *domain.Profile) *domain.ValidationResult {
	return New(p).Validate()
}

func (v *Validator) root() *domain.Mapping { return v.profile.Root }

func (v *Validator) add(sev domain.Severity, path, format string, args ...any) {
	v.findings = append(v.findings, domain.Finding{
		Severity: sev,
		Check:    v.current,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

func (v *Validator) errorf(path, format string, args ...any) {
	v.add(domain.SeverityError, path, format, args...)
}

func (v *Validator) warnf(path, format string, args ...any) {
	v.add(domain.SeverityWarning, path, format, args...)
}

func (v *Validator) infof(path, format string, args ...any) {
	v.add(domain.SeverityInfo, path, format, args...)
}

// requireKeys reports one finding per key of keys that section does not
// define. A section that is not a mapping defines nothing.
func (v *Validator) requireKeys(section any, prefix string, keys []string, sev domain.Severity, mode presence) {
	for _, key := range keys {
		val, ok := domain.LookupOK(section, key)
		switch mode {
		case defined:
			if ok {
				continue
			}
		default:
			if domain.Truthy(val) {
				continue
			}
		}
		path := joinPath(prefix, key)
		msg := "missing " + path
		if hint, ok := keyHints[path]; ok {
			msg += " (" + hint + ")"
		}
		v.add(sev, path, "%s", msg)
	}
}

func joinPath(parts ...string) string {
	return strings.Join(parts, ".")
}
