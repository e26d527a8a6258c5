package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Created .tokenkraft.yaml")

	data, err := os.ReadFile(filepath.Join(dir, ".tokenkraft.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "profile_dirs:")
}

func TestInitCommand_ExistingRequiresForce(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "init", dir)
	require.NoError(t, err)

	_, err = run(t, "init", dir)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "init", dir, "--force")
	assert.NoError(t, err)
}

func TestInitCommand_StarterProfilePasses(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "init", dir, "--profile", "acme")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join("design-profiles", "acme.yaml"))

	profile := filepath.Join(dir, "design-profiles", "acme.yaml")
	out, err = run(t, "validate", "--strict", "--path", dir, profile)
	require.NoError(t, err, out)
	assert.Contains(t, out, "acme")

	_, err = run(t, "validate", "--all", "--path", dir)
	assert.NoError(t, err)
}

func TestInitCommand_RejectsProfilePaths(t *testing.T) {
	_, err := run(t, "init", t.TempDir(), "--profile", "../escape")
	assert.ErrorContains(t, err, "invalid profile name")
}
