package domain_test

import (
	"testing"

	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.Equal(t, []string{"design-profiles"}, cfg.ProfileDirs)
	assert.Equal(t, "src/styles", cfg.OutputDir)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.RecordHistory)
	for _, f := range domain.ValidFormats {
		assert.True(t, cfg.WantsFormat(f), f)
	}
	assert.NoError(t, cfg.Validate())
}

func TestProjectConfig_WantsFormat(t *testing.T) {
	cfg := domain.ProjectConfig{Formats: []string{domain.FormatCSS}}
	assert.True(t, cfg.WantsFormat(domain.FormatCSS))
	assert.False(t, cfg.WantsFormat(domain.FormatTailwind))
}

func TestProjectConfig_Validate_UnknownFormat(t *testing.T) {
	cfg := domain.ProjectConfig{Formats: []string{"css", "scss"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "scss"`)
}

func TestProjectConfig_Validate_DuplicateFormat(t *testing.T) {
	cfg := domain.ProjectConfig{Formats: []string{"css", "css"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate format")
}

func TestProjectConfig_Validate_EmptyEntries(t *testing.T) {
	err := domain.ProjectConfig{ProfileDirs: []string{"profiles", ""}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty entry in profile_dirs")

	err = domain.ProjectConfig{ExcludePaths: []string{""}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty entry in exclude_paths")
}

func TestProjectConfig_Validate_ProfileDirsStayInProject(t *testing.T) {
	for _, dir := range []string{"/etc", "../elsewhere", "a/../../b"} {
		err := domain.ProjectConfig{ProfileDirs: []string{dir}}.Validate()
		assert.Error(t, err, dir)
	}
}
