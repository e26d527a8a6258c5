package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/tokenkraft/internal/adapters/inbound/cli"
	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand_Valid(t *testing.T) {
	out, err := run(t, "validate", fixture("complete.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Soft SaaS")
	assert.Contains(t, out, "Profile is valid!")
	assert.NotContains(t, out, "Errors (")
}

func TestValidateCommand_InfosPassUnlessStrict(t *testing.T) {
	out, err := run(t, "validate", fixture("brutalist.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "Warnings/Info")
	assert.Contains(t, out, "brutalist style detected")

	out, err = run(t, "validate", "--strict", fixture("brutalist.yaml"))
	require.Error(t, err)
	assert.True(t, cli.IsCheckFailure(err))
	assert.Contains(t, out, "Strict mode: 2 warnings.")
}

func TestValidateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("meta:\n  name: Thin\n"), 0644))

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.True(t, cli.IsCheckFailure(err))
	assert.Contains(t, out, "missing required section 'colors'")
	assert.Contains(t, out, "that must be fixed.")
}

func TestValidateCommand_LoadFailures(t *testing.T) {
	_, err := run(t, "validate", fixture("broken.yaml"))
	require.Error(t, err)
	assert.False(t, cli.IsCheckFailure(err))
	assert.True(t, domain.IsLoadError(err, domain.LoadErrorParse))

	_, err = run(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, domain.IsLoadError(err, domain.LoadErrorRead))
}

func TestValidateCommand_JSON(t *testing.T) {
	out, err := run(t, "validate", "--json", fixture("brutalist.yaml"))
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output should be valid JSON")
	assert.Equal(t, "Raw Grid", result["profile"])
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "warn", result["status"])
	assert.Len(t, result["warnings"], 2)
}

func TestValidateCommand_Args(t *testing.T) {
	_, err := run(t, "validate")
	assert.ErrorContains(t, err, "--all")

	_, err = run(t, "validate", "--all", fixture("complete.yaml"))
	assert.Error(t, err)

	_, err = run(t, "validate", "--all", "--watch")
	assert.Error(t, err)
}

func TestValidateCommand_BuiltinSchema(t *testing.T) {
	_, err := run(t, "validate", "--schema", fixture("complete.yaml"))
	assert.NoError(t, err)
}

func TestValidateCommand_SchemaFile(t *testing.T) {
	schemaPath := filepath.Join(t.TempDir(), "brand.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{"type": "object", "required": ["brand"]}`), 0644))

	out, err := run(t, "validate", "--json", "--schema="+schemaPath, fixture("complete.yaml"))
	require.Error(t, err)
	assert.True(t, cli.IsCheckFailure(err))
	assert.Contains(t, out, `"check": "schema"`)

	_, err = run(t, "validate", "--schema="+filepath.Join(t.TempDir(), "nope.json"), fixture("complete.yaml"))
	require.Error(t, err)
	assert.False(t, cli.IsCheckFailure(err))
}

func TestValidateCommand_All(t *testing.T) {
	dir := project(t, "complete.yaml", "brutalist.yaml")

	out, err := run(t, "validate", "--all", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "All 2 profiles passed")

	_, err = run(t, "validate", "--all", "--strict", "--path", dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "1 of 2 profiles failed")
}

func TestValidateCommand_AllReportsBrokenFiles(t *testing.T) {
	dir := project(t, "complete.yaml", "broken.yaml")

	out, err := run(t, "validate", "--all", "--json", "--path", dir)
	require.Error(t, err)
	assert.True(t, cli.IsCheckFailure(err))

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results), "output should be a JSON array")
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join("design-profiles", "broken.yaml"), results[0]["source"])
	assert.Equal(t, false, results[0]["valid"])
	assert.Equal(t, "Soft SaaS", results[1]["profile"])
}

func TestValidateCommand_StrictFromConfig(t *testing.T) {
	dir := project(t, "brutalist.yaml")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tokenkraft.yaml"), []byte("strict: true\n"), 0644))

	_, err := run(t, "validate", "--all", "--path", dir)
	assert.Error(t, err, "strict from config should fail on infos")

	_, err = run(t, "validate", "--all", "--strict=false", "--path", dir)
	assert.NoError(t, err, "an explicit flag overrides the config")
}

func TestValidateCommand_RecordAndHistory(t *testing.T) {
	dir := project(t, "complete.yaml")
	profile := filepath.Join(dir, "design-profiles", "complete.yaml")

	_, err := run(t, "validate", "--record", "--path", dir, profile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, ".tokenkraft", "history", "runs.json"))

	out, err := run(t, "history", "--json", "--path", dir)
	require.NoError(t, err)
	var entries []domain.RunEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Soft SaaS", entries[0].Profile)
	assert.Equal(t, domain.StatusPass, entries[0].Status)
	assert.NotEmpty(t, entries[0].ID)

	out, err = run(t, "history", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Soft SaaS")
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := run(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No validation history found.")
}
