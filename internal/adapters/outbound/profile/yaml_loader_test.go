package profile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/profile"
	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestYAMLLoader_LoadFixture(t *testing.T) {
	p, err := profile.New().Load("../../../../testdata/profiles/complete.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Soft SaaS", p.Name())
	assert.Equal(t, []string{
		"meta", "colors", "typography", "spacing", "borders", "shadows", "animation", "component-guidelines",
	}, p.Root.Keys())
}

func TestYAMLLoader_PreservesKeyOrder(t *testing.T) {
	p, err := profile.Parse([]byte(`
colors:
  zeta: "#000000"
  alpha: "#FFFFFF"
  mid: "#777777"
`), "order.yaml")
	require.NoError(t, err)

	colors, ok := p.Section("colors").(*domain.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, colors.Keys())
}

func TestYAMLLoader_ScalarTypes(t *testing.T) {
	p, err := profile.Parse([]byte(`
a: "0"
b: 0
c: 1.5
d: true
e: ~
f: [1, two]
`), "types.yaml")
	require.NoError(t, err)

	assert.Equal(t, "0", domain.Lookup(p.Root, "a"))
	assert.Equal(t, 0, domain.Lookup(p.Root, "b"))
	assert.Equal(t, 1.5, domain.Lookup(p.Root, "c"))
	assert.Equal(t, true, domain.Lookup(p.Root, "d"))
	v, ok := domain.LookupOK(p.Root, "e")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Equal(t, []any{1, "two"}, domain.Lookup(p.Root, "f"))
}

func TestYAMLLoader_DatesStayStrings(t *testing.T) {
	p, err := profile.Parse([]byte("released: 2024-01-01\nstamp: 2001-12-14t21:59:43.10-05:00\nquoted: \"2024-01-01\"\n"), "dates.yaml")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", domain.Lookup(p.Root, "released"))
	assert.Equal(t, "2001-12-14t21:59:43.10-05:00", domain.Lookup(p.Root, "stamp"))
	assert.Equal(t, "2024-01-01", domain.Lookup(p.Root, "quoted"))
	assert.Equal(t, "2024-01-01", domain.DisplayValue(domain.Lookup(p.Root, "released")))
}

func TestYAMLLoader_ResolvesAliases(t *testing.T) {
	p, err := profile.Parse([]byte(`
base: &ink "#111111"
colors:
  text:
    primary: *ink
`), "alias.yaml")
	require.NoError(t, err)
	assert.Equal(t, "#111111", domain.Lookup(p.Root, "colors", "text", "primary"))
}

func TestYAMLLoader_AcceptsJSON(t *testing.T) {
	path := writeProfile(t, "p.json", `{"meta": {"name": "Json"}, "colors": {"text": {"primary": "#000000"}}}`)
	p, err := profile.New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Json", p.Name())
	assert.Equal(t, path, p.Source)
}

func TestYAMLLoader_MissingFileIsReadError(t *testing.T) {
	_, err := profile.New().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsLoadError(err, domain.LoadErrorRead))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLLoader_InvalidYAMLIsParseError(t *testing.T) {
	_, err := profile.New().Load("../../../../testdata/profiles/broken.yaml")
	require.Error(t, err)
	assert.True(t, domain.IsLoadError(err, domain.LoadErrorParse))
	assert.Contains(t, err.Error(), "invalid document")
}

func TestYAMLLoader_RejectsNonMappingRoots(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":    "",
		"comment":  "# nothing here\n",
		"scalar":   "just a string",
		"sequence": "- a\n- b\n",
	} {
		_, err := profile.Parse([]byte(doc), name)
		require.Error(t, err, name)
		assert.True(t, domain.IsLoadError(err, domain.LoadErrorParse), name)
	}
}

func TestYAMLLoader_RejectsDuplicateKeys(t *testing.T) {
	_, err := profile.Parse([]byte("meta:\n  name: a\n  name: b\n"), "dup.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate key "name"`)
}

func TestMapping_MarshalJSONKeepsOrder(t *testing.T) {
	p, err := profile.Parse([]byte("z: 1\na: {y: x, b: [true, null]}\n"), "j.yaml")
	require.NoError(t, err)

	data, err := json.Marshal(p.Root)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"y":"x","b":[true,null]}}`, string(data))
}
