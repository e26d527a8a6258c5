package schema_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/profile"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/schema"
	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string) *domain.Profile {
	t.Helper()
	p, err := profile.New().Load("../../../../testdata/profiles/" + name)
	require.NoError(t, err)
	return p
}

func parse(t *testing.T, doc string) *domain.Profile {
	t.Helper()
	p, err := profile.Parse([]byte(doc), "inline.yaml")
	require.NoError(t, err)
	return p
}

func TestBuiltin_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal(schema.Builtin(), &v))
	assert.Equal(t, "object", v["type"])
}

func TestChecker_FixturesConform(t *testing.T) {
	c, err := schema.NewBuiltin()
	require.NoError(t, err)
	assert.Equal(t, "builtin", c.Source())

	for _, name := range []string{"complete.yaml", "brutalist.yaml"} {
		findings, err := c.Check(load(t, name))
		require.NoError(t, err)
		assert.Empty(t, findings, name)
	}
}

func TestChecker_ReportsTypeErrors(t *testing.T) {
	c, err := schema.NewBuiltin()
	require.NoError(t, err)

	findings, err := c.Check(parse(t, `
meta: {name: ""}
colors:
  text:
    primary: 123
spacing: [1, 2]
`))
	require.NoError(t, err)
	require.Len(t, findings, 3)

	for _, f := range findings {
		assert.Equal(t, domain.SeverityError, f.Severity)
		assert.Equal(t, schema.CheckName, f.Check)
	}
	assert.Equal(t, "colors.text.primary", findings[0].Path)
	assert.Contains(t, findings[0].Message, "schema: colors.text.primary:")
	assert.Equal(t, "meta.name", findings[1].Path)
	assert.Equal(t, "spacing", findings[2].Path)
}

func TestChecker_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strict.schema.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"type": "object", "required": ["brand"]}`), 0644))

	c, err := schema.NewFromFile(path)
	require.NoError(t, err)

	findings, err := c.Check(parse(t, "meta: {name: x}\n"))
	require.NoError(t, err)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, "brand")
}

func TestChecker_FromFileErrors(t *testing.T) {
	_, err := schema.NewFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"type": 12}`), 0644))
	_, err = schema.NewFromFile(bad)
	assert.Error(t, err)
}
