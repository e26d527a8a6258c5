package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensCommand_WritesAllFormats(t *testing.T) {
	out := t.TempDir()

	stdout, err := run(t, "tokens", fixture("complete.yaml"), "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Soft SaaS")
	assert.Contains(t, stdout, "Style notes")

	css, err := os.ReadFile(filepath.Join(out, "design-tokens.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), "--color-accent-primary: #1D4ED8;")
	assert.FileExists(t, filepath.Join(out, "fonts.css"))
	assert.FileExists(t, filepath.Join(out, "design-tokens.ts"))
}

func TestTokensCommand_FormatFlags(t *testing.T) {
	out := t.TempDir()
	_, err := run(t, "tokens", fixture("complete.yaml"), "-o", out, "--tailwind")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "design-tokens.ts"))
	assert.NoFileExists(t, filepath.Join(out, "design-tokens.css"))

	out = t.TempDir()
	_, err = run(t, "tokens", fixture("complete.yaml"), "-o", out, "--css")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "design-tokens.css"))
	assert.FileExists(t, filepath.Join(out, "fonts.css"))
	assert.NoFileExists(t, filepath.Join(out, "design-tokens.ts"))

	_, err = run(t, "tokens", fixture("complete.yaml"), "--css", "--tailwind")
	assert.Error(t, err)
}

func TestTokensCommand_OutputDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "output_dir: theme\nformats: [tailwind]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tokenkraft.yaml"), []byte(cfg), 0644))

	_, err := run(t, "tokens", fixture("complete.yaml"), "--path", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "theme", "design-tokens.ts"))
	assert.NoFileExists(t, filepath.Join(dir, "theme", "design-tokens.css"))
}

func TestTokensCommand_JSONWritesNothing(t *testing.T) {
	dir := t.TempDir()

	stdout, err := run(t, "tokens", fixture("brutalist.yaml"), "--json", "--path", dir)
	require.NoError(t, err)

	var bundle struct {
		Profile string           `json:"profile"`
		Files   []map[string]any `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &bundle))
	assert.Equal(t, "Raw Grid", bundle.Profile)
	assert.Len(t, bundle.Files, 3)
	assert.NoDirExists(t, filepath.Join(dir, "src"))
}

func TestTokensCommand_RequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors:\n  text:\n    primary: \"#000000\"\n"), 0644))

	_, err := run(t, "tokens", path, "--json")
	assert.ErrorContains(t, err, "meta.name")
}
