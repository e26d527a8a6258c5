package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/openkraft/tokenkraft/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the project root.
const FileName = ".tokenkraft.yaml"

// Environment overrides. Values from the process environment win over a
// project .env file, which wins over FileName.
const (
	EnvOutputDir = "TOKENKRAFT_OUTPUT_DIR"
	EnvStrict    = "TOKENKRAFT_STRICT"
)

// YAMLLoader implements domain.ConfigLoader by reading .tokenkraft.yaml.
type YAMLLoader struct {
	lookupEnv func(string) (string, bool)
}

// New creates a YAMLLoader that reads overrides from the process environment.
func New() *YAMLLoader { return &YAMLLoader{lookupEnv: os.LookupEnv} }

// NewWithEnv creates a YAMLLoader with a custom environment lookup.
func NewWithEnv(lookup func(string) (string, bool)) *YAMLLoader {
	return &YAMLLoader{lookupEnv: lookup}
}

// Load reads .tokenkraft.yaml from projectPath. Keys absent from the file
// keep their DefaultConfig values; a missing file yields the defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.ProjectConfig, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.ProjectConfig{}, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	}

	if err := l.applyEnv(projectPath, &cfg); err != nil {
		return domain.ProjectConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

func (l *YAMLLoader) applyEnv(projectPath string, cfg *domain.ProjectConfig) error {
	dotenv, err := godotenv.Read(filepath.Join(projectPath, ".env"))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	lookup := func(key string) (string, bool) {
		if l.lookupEnv != nil {
			if v, ok := l.lookupEnv(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvOutputDir); ok && v != "" {
		cfg.OutputDir = v
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvStrict, err)
		}
		cfg.Strict = strict
	}
	return nil
}

// Template is the starter configuration written by `tokenkraft init`.
const Template = `# tokenkraft project configuration
profile_dirs:
  - design-profiles
exclude_paths: []
strict: false
output_dir: src/styles
formats:
  - css
  - fonts
  - tailwind
record_history: false
# schema: profile.schema.json
`
