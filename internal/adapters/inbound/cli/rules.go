package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the validation rule tables as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderJSON(cmd, rules.Rules())
		},
	}
}
