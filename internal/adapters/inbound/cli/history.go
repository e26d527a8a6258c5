package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/history"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/tokenkraft/internal/application"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var (
		projectPath string
		jsonOutput  bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded validation runs",
		Long:  "Show the runs recorded by validate --record, oldest first, with the change in error count per profile.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absProject, err := absPath(projectPath)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(nil, nil, nil, history.New(), nil, opts.log())
			entries, err := svc.History(absProject)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
