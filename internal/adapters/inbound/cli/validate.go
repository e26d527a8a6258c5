package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openkraft/tokenkraft/internal/adapters/inbound/watch"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/config"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/history"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/profile"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/scanner"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/schema"
	"github.com/openkraft/tokenkraft/internal/adapters/outbound/tui"
	"github.com/openkraft/tokenkraft/internal/application"
	"github.com/openkraft/tokenkraft/internal/domain"
)

const builtinSchema = "builtin"

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var (
		strict      bool
		jsonOutput  bool
		all         bool
		record      bool
		watchMode   bool
		schemaFile  string
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [profile]",
		Short: "Validate a design profile",
		Long: "Run the rule battery against a design profile and report errors, warnings and info.\n" +
			"Exits non-zero when the profile has errors, or any warnings under --strict.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case all && len(args) > 0:
				return fmt.Errorf("--all does not take a profile argument")
			case !all && len(args) == 0:
				return fmt.Errorf("specify a profile file or --all")
			case all && watchMode:
				return fmt.Errorf("--watch works on a single profile")
			}

			absProject, err := absPath(projectPath)
			if err != nil {
				return err
			}
			cfgLoader := config.New()
			cfg, err := cfgLoader.Load(absProject)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("strict") {
				strict = cfg.Strict
			}
			if !cmd.Flags().Changed("record") {
				record = cfg.RecordHistory
			}
			if !cmd.Flags().Changed("schema") && cfg.Schema != "" {
				schemaFile = cfg.Schema
				if schemaFile != builtinSchema {
					schemaFile = inProject(absProject, schemaFile)
				}
			}

			vopts := application.ValidateOptions{
				Strict:      strict,
				Record:      record,
				ProjectPath: absProject,
			}
			if schemaFile != "" {
				checker, err := loadSchema(schemaFile)
				if err != nil {
					return err
				}
				vopts.Schema = checker
			}

			svc := application.NewValidateService(
				profile.New(),
				scanner.New(),
				cfgLoader,
				history.New(),
				gitinfo.New(),
				opts.log(),
			)

			switch {
			case all:
				return validateAll(cmd, svc, absProject, vopts, jsonOutput)
			case watchMode:
				return watchProfile(cmd, svc, args[0], vopts, jsonOutput, opts.log())
			default:
				return validateOne(cmd, svc, args[0], vopts, jsonOutput)
			}
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings and info as well as errors")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")
	cmd.Flags().BoolVar(&all, "all", false, "Validate every profile in the configured profile_dirs")
	cmd.Flags().BoolVar(&record, "record", false, "Append the run to .tokenkraft/history/runs.json")
	cmd.Flags().BoolVar(&watchMode, "watch", false, "Re-validate whenever the profile changes")
	cmd.Flags().StringVar(&schemaFile, "schema", "", "Also check against a JSON Schema (--schema for the built-in one, --schema=<file> for your own)")
	cmd.Flags().Lookup("schema").NoOptDefVal = builtinSchema
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project root holding .tokenkraft.yaml")

	return cmd
}

func loadSchema(source string) (*schema.Checker, error) {
	if source == builtinSchema {
		return schema.NewBuiltin()
	}
	return schema.NewFromFile(source)
}

func validateOne(cmd *cobra.Command, svc *application.ValidateService, path string, opts application.ValidateOptions, jsonOutput bool) error {
	result, err := svc.ValidateFile(path, opts)
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := renderJSON(cmd, result); err != nil {
			return err
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(result, opts.Strict))
	}

	if !result.Passes(opts.Strict) {
		return fmt.Errorf("%w: %s is %s", errCheckFailed, result.Profile, result.Status(opts.Strict))
	}
	return nil
}

func validateAll(cmd *cobra.Command, svc *application.ValidateService, projectPath string, opts application.ValidateOptions, jsonOutput bool) error {
	results, err := svc.ValidateAll(projectPath, opts)
	if err != nil {
		return fmt.Errorf("validate failed: %w", err)
	}
	for _, r := range results {
		if rel, err := filepath.Rel(projectPath, r.Source); err == nil {
			r.Source = rel
		}
	}

	if jsonOutput {
		if err := renderJSON(cmd, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderValidation(r, opts.Strict))
		}
		fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(results, opts.Strict))
	}

	failed := 0
	for _, r := range results {
		if !r.Passes(opts.Strict) {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d profiles failed", errCheckFailed, failed, len(results))
	}
	return nil
}

// watchProfile validates once, then again on every change until interrupted.
// Failing runs are reported but do not stop the watch.
func watchProfile(cmd *cobra.Command, svc *application.ValidateService, path string, opts application.ValidateOptions, jsonOutput bool, logger *zap.Logger) error {
	abs, err := absPath(path)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func() {
		err := validateOne(cmd, svc, abs, opts, jsonOutput)
		switch {
		case err == nil, IsCheckFailure(err):
		case domain.IsLoadError(err, domain.LoadErrorRead), domain.IsLoadError(err, domain.LoadErrorParse):
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		default:
			logger.Warn("validation run failed", zap.Error(err))
		}
	}

	run()
	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes (Ctrl+C to stop)\n", path)
	return watch.New(abs, run, logger).Run(ctx)
}
