package domain

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Token output formats.
const (
	FormatCSS      = "css"
	FormatFonts    = "fonts"
	FormatTailwind = "tailwind"
)

// ValidFormats enumerates all token output formats.
var ValidFormats = []string{FormatCSS, FormatFonts, FormatTailwind}

// ProjectConfig holds project-level configuration loaded from .tokenkraft.yaml.
type ProjectConfig struct {
	ProfileDirs   []string `yaml:"profile_dirs"   json:"profile_dirs,omitempty"   validate:"dive,required"`
	ExcludePaths  []string `yaml:"exclude_paths"  json:"exclude_paths,omitempty"  validate:"dive,required"`
	Strict        bool     `yaml:"strict"         json:"strict,omitempty"`
	OutputDir     string   `yaml:"output_dir"     json:"output_dir,omitempty"`
	Formats       []string `yaml:"formats"        json:"formats,omitempty"        validate:"dive,oneof=css fonts tailwind"`
	RecordHistory bool     `yaml:"record_history" json:"record_history,omitempty"`
	Schema        string   `yaml:"schema"         json:"schema,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		ProfileDirs: []string{"design-profiles"},
		OutputDir:   "src/styles",
		Formats:     []string{FormatCSS, FormatFonts, FormatTailwind},
	}
}

// WantsFormat reports whether the given token format is enabled.
func (c ProjectConfig) WantsFormat(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

var configValidator = validator.New()

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return describeFieldError(verrs[0])
		}
		return err
	}

	seen := make(map[string]bool, len(c.Formats))
	for _, f := range c.Formats {
		if seen[f] {
			return fmt.Errorf("duplicate format %q in formats", f)
		}
		seen[f] = true
	}

	for _, d := range c.ProfileDirs {
		if strings.HasPrefix(d, "/") || strings.Contains(d, "..") {
			return fmt.Errorf("profile_dirs entry %q must be relative to the project", d)
		}
	}

	return nil
}

func describeFieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.StructField())
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("unknown format %q (valid: %s)", fe.Value(), strings.Join(ValidFormats, ", "))
	case "required":
		return fmt.Errorf("empty entry in %s", yamlFieldName(field))
	default:
		return fmt.Errorf("invalid %s: %s", yamlFieldName(field), fe.Tag())
	}
}

func yamlFieldName(structField string) string {
	switch structField {
	case "profiledirs":
		return "profile_dirs"
	case "excludepaths":
		return "exclude_paths"
	default:
		return structField
	}
}
