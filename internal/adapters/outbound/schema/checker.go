// Package schema checks profile documents against a JSON Schema.
package schema

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

// CheckName is the check recorded on schema findings.
const CheckName = "schema"

//go:embed profile.schema.json
var builtin []byte

// Builtin returns the embedded profile schema.
func Builtin() []byte {
	out := make([]byte, len(builtin))
	copy(out, builtin)
	return out
}

// Checker implements domain.SchemaChecker with a compiled schema.
type Checker struct {
	source string
	schema *gojsonschema.Schema
}

// NewBuiltin compiles the embedded profile schema.
func NewBuiltin() (*Checker, error) {
	return compile("builtin", builtin)
}

// NewFromFile compiles a user-supplied schema.
func NewFromFile(path string) (*Checker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return compile(path, data)
}

func compile(source string, data []byte) (*Checker, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", source, err)
	}
	return &Checker{source: source, schema: s}, nil
}

// Source names where the schema came from.
func (c *Checker) Source() string { return c.source }

// Check returns one error finding per schema violation, ordered by path.
func (c *Checker) Check(p *domain.Profile) ([]domain.Finding, error) {
	result, err := c.schema.Validate(gojsonschema.NewGoLoader(p.Root.Plain()))
	if err != nil {
		return nil, fmt.Errorf("schema check %s: %w", p.Source, err)
	}
	if result.Valid() {
		return nil, nil
	}

	findings := make([]domain.Finding, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		path := field
		if field == "" || field == "(root)" {
			field, path = "(root)", ""
		}
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityError,
			Check:    CheckName,
			Path:     path,
			Message:  fmt.Sprintf("schema: %s: %s", field, desc.Description()),
		})
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		return findings[i].Message < findings[j].Message
	})
	return findings, nil
}
