package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/config"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/profile"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/tokenkraft/internal/application"
	"github.com/openkraft/tokenkraft/internal/domain"
)

func newTokensCmd(opts *rootOptions) *cobra.Command {
	var (
		outputDir    string
		cssOnly      bool
		tailwindOnly bool
		jsonOutput   bool
		projectPath  string
	)

	cmd := &cobra.Command{
		Use:   "tokens <profile>",
		Short: "Generate CSS and Tailwind design tokens from a profile",
		Long: "Write design-tokens.css, fonts.css and design-tokens.ts generated from a design profile.\n" +
			"Formats and the output directory default to the values in .tokenkraft.yaml.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absProject, err := absPath(projectPath)
			if err != nil {
				return err
			}
			cfg, err := config.New().Load(absProject)
			if err != nil {
				return err
			}

			var formats []string
			switch {
			case cssOnly:
				formats = []string{domain.FormatCSS, domain.FormatFonts}
			case tailwindOnly:
				formats = []string{domain.FormatTailwind}
			default:
				formats = cfg.Formats
			}

			svc := application.NewTokensService(profile.New(), opts.log())
			bundle, err := svc.Generate(args[0], formats)
			if err != nil {
				return fmt.Errorf("generating tokens: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, bundle)
			}

			dir := outputDir
			if !cmd.Flags().Changed("output") {
				dir = inProject(absProject, cfg.OutputDir)
			}
			paths, err := svc.Write(dir, bundle)
			if err != nil {
				return err
			}

			written := make([]tui.WrittenFile, len(paths))
			for i, p := range paths {
				written[i] = tui.WrittenFile{Format: bundle.Files[i].Format, Path: p}
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTokenSummary(bundle.Profile, written, bundle.Notes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default: output_dir from config, src/styles)")
	cmd.Flags().BoolVar(&cssOnly, "css", false, "Only generate design-tokens.css and fonts.css")
	cmd.Flags().BoolVar(&tailwindOnly, "tailwind", false, "Only generate design-tokens.ts")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the generated files as JSON instead of writing them")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .tokenkraft.yaml")
	cmd.MarkFlagsMutuallyExclusive("css", "tailwind")

	return cmd
}
