package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

// errCheckFailed marks a run that completed but did not pass. Its report has
// already been printed, so Execute only sets the exit status.
var errCheckFailed = errors.New("check failed")

type rootOptions struct {
	verbose bool
	logger  *zap.Logger
}

func (o *rootOptions) log() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "tokenkraft",
		Short: "Validate design profiles and generate design tokens",
		Long: "tokenkraft checks design profiles (YAML documents describing a visual theme) for " +
			"structure, color format, WCAG contrast and consistency, and turns them into CSS " +
			"custom properties and a Tailwind theme extension.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newTokensCmd(opts))
	cmd.AddCommand(newContrastCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newHistoryCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// IsCheckFailure reports whether err only signals a failed check, whose
// report was already written.
func IsCheckFailure(err error) bool {
	return errors.Is(err, errCheckFailed)
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !IsCheckFailure(err) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
