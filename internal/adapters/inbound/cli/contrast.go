package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/tokenkraft/internal/domain"
	"github.com/openkraft/tokenkraft/internal/domain/color"
)

func newContrastCmd() *cobra.Command {
	var (
		jsonOutput bool
		minRatio   float64
	)

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Long:  "Compute the contrast ratio between two #RRGGBB colors and check it against the WCAG levels.",
		Example: "  tokenkraft contrast '#0F172A' '#FFFFFF'\n" +
			"  tokenkraft contrast '#64748B' '#F8FAFC' --min 7",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := color.Assess(args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, a); err != nil {
					return err
				}
			} else {
				levels := make([]tui.ContrastLevel, len(a.Levels))
				for i, l := range a.Levels {
					levels[i] = tui.ContrastLevel{Name: l.Name, MinRatio: l.MinRatio, Pass: l.Pass}
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderContrast(a.Foreground, a.Background, a.Ratio, levels))
			}

			if a.Ratio < minRatio {
				return fmt.Errorf("%w: contrast %.2f:1 is below %s:1", errCheckFailed, a.Ratio, domain.FormatNumber(minRatio))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the assessment as JSON")
	cmd.Flags().Float64Var(&minRatio, "min", 4.5, "Exit non-zero when the ratio is below this value")

	return cmd
}
