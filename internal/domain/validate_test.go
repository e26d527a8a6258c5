package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func finding(sev domain.Severity, msg string) domain.Finding {
	return domain.Finding{Severity: sev, Check: "test", Message: msg}
}

func TestValidationResult_Empty(t *testing.T) {
	r := &domain.ValidationResult{}
	assert.True(t, r.Valid())
	assert.Empty(t, r.Errors())
	assert.Empty(t, r.Warnings())
	assert.True(t, r.Passes(false))
	assert.True(t, r.Passes(true))
	assert.Equal(t, domain.StatusPass, r.Status(true))
}

func TestValidationResult_WarningsIncludeInfos(t *testing.T) {
	r := &domain.ValidationResult{Findings: []domain.Finding{
		finding(domain.SeverityInfo, "i1"),
		finding(domain.SeverityWarning, "w1"),
		finding(domain.SeverityInfo, "i2"),
	}}

	assert.True(t, r.Valid())
	warns := r.Warnings()
	require.Len(t, warns, 3)
	assert.Equal(t, "i1", warns[0].Message)
	assert.Equal(t, "w1", warns[1].Message)
	assert.Equal(t, "i2", warns[2].Message)
	assert.Equal(t, 2, r.Count(domain.SeverityInfo))
	assert.Equal(t, 1, r.Count(domain.SeverityWarning))
	assert.Equal(t, 0, r.Count(domain.SeverityError))
}

func TestValidationResult_ExitContract(t *testing.T) {
	tests := []struct {
		name       string
		findings   []domain.Finding
		passes     bool
		strict     bool
		status     string
		strictStat string
	}{
		{"clean", nil, true, true, domain.StatusPass, domain.StatusPass},
		{"info only", []domain.Finding{finding(domain.SeverityInfo, "i")}, true, false, domain.StatusWarn, domain.StatusFail},
		{"warning", []domain.Finding{finding(domain.SeverityWarning, "w")}, true, false, domain.StatusWarn, domain.StatusFail},
		{"error", []domain.Finding{finding(domain.SeverityError, "e")}, false, false, domain.StatusFail, domain.StatusFail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &domain.ValidationResult{Findings: tt.findings}
			assert.Equal(t, tt.passes, r.Passes(false))
			assert.Equal(t, tt.strict, r.Passes(true))
			assert.Equal(t, tt.status, r.Status(false))
			assert.Equal(t, tt.strictStat, r.Status(true))
		})
	}
}

func TestValidationResult_ValidIsDerived(t *testing.T) {
	r := &domain.ValidationResult{}
	assert.True(t, r.Valid())
	r.Findings = append(r.Findings, finding(domain.SeverityError, "late"))
	assert.False(t, r.Valid())
}

func TestValidationResult_ErrorsKeepOrder(t *testing.T) {
	r := &domain.ValidationResult{Findings: []domain.Finding{
		finding(domain.SeverityError, "first"),
		finding(domain.SeverityWarning, "between"),
		finding(domain.SeverityError, "second"),
	}}
	errs := r.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, "second", errs[1].Message)
}

func TestValidationResult_MarshalJSON(t *testing.T) {
	r := &domain.ValidationResult{
		Profile: "Soft SaaS",
		Source:  "design-profiles/soft.yaml",
		Findings: []domain.Finding{
			{Severity: domain.SeverityError, Check: "colors", Path: "colors.text.muted", Message: "missing color colors.text.muted"},
		},
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Soft SaaS", decoded["profile"])
	assert.Equal(t, false, decoded["valid"])
	assert.Equal(t, "fail", decoded["status"])
	assert.Len(t, decoded["errors"], 1)
	assert.Equal(t, []any{}, decoded["warnings"])
	assert.Len(t, decoded["findings"], 1)
}

func TestValidationResult_MarshalJSONEmptySlices(t *testing.T) {
	data, err := json.Marshal(&domain.ValidationResult{Profile: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"findings":[]`)
	assert.Contains(t, string(data), `"errors":[]`)
	assert.Contains(t, string(data), `"valid":true`)
}
