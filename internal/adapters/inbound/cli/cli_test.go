package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/openkraft/tokenkraft/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/require"
)

const profilesDir = "../../../../testdata/profiles"

func fixture(name string) string {
	return filepath.Join(profilesDir, name)
}

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// project creates a project root whose design-profiles dir holds copies of
// the named fixtures.
func project(t *testing.T, fixtures ...string) string {
	t.Helper()
	dir := t.TempDir()
	profiles := filepath.Join(dir, "design-profiles")
	require.NoError(t, os.MkdirAll(profiles, 0755))
	for _, name := range fixtures {
		data, err := os.ReadFile(fixture(name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(profiles, name), data, 0644))
	}
	return dir
}
