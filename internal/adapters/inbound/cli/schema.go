package cli

import (
	"github.com/spf13/cobra"

	"github.com/openkraft/tokenkraft/internal/adapters/outbound/schema"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the built-in profile JSON Schema",
		Long:  "Print the JSON Schema used by validate --schema. Save it to start a project-specific schema.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(schema.Builtin())
			return err
		},
	}
}
