package cli

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/config"
	"github.com/openkraft/tokenkraft/internal/domain"
)

//go:embed starter_profile.yaml.tmpl
var starterProfileTmpl string

var starterProfile = template.Must(template.New("profile").Parse(starterProfileTmpl))

func newInitCmd() *cobra.Command {
	var (
		force       bool
		profileName string
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .tokenkraft.yaml configuration file",
		Long: "Create a .tokenkraft.yaml with default settings. With --profile, also write a starter\n" +
			"profile that passes validation to design-profiles/<name>.yaml.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absProject, err := absPath(path)
			if err != nil {
				return err
			}
			if profileName != "" && (profileName != filepath.Base(profileName) || profileName == ".") {
				return fmt.Errorf("invalid profile name %q", profileName)
			}

			if err := writeNew(filepath.Join(absProject, config.FileName), []byte(config.Template), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)

			if profileName == "" {
				return nil
			}

			var buf bytes.Buffer
			if err := starterProfile.Execute(&buf, struct{ Name string }{profileName}); err != nil {
				return fmt.Errorf("rendering starter profile: %w", err)
			}
			rel := filepath.Join(domain.DefaultConfig().ProfileDirs[0], profileName+".yaml")
			dest := filepath.Join(absProject, rel)
			if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
				return fmt.Errorf("creating profile dir: %w", err)
			}
			if err := writeNew(dest, buf.Bytes(), force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", rel)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&profileName, "profile", "", "Also create a starter profile with this name")

	return cmd
}

func writeNew(dest string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Base(dest))
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(dest), err)
	}
	return nil
}
