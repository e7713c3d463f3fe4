// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/config"
	"github.com/plugsmith/plugsmith/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// rootFlagValues holds the persistent flags shared by every subcommand.
type rootFlagValues struct {
	verbose    bool
	configPath string
	stateDir   string

	// cfg is the configuration loaded by the running command, nil until then.
	cfg *config.Config
}

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlagValues{}

	rootCmd := &cobra.Command{
		Use:   "plugsmith",
		Short: "Design engine plugins and render their descriptor, specification and scaffold",
		Long: TitleStyle.Render("plugsmith") + SubtitleStyle.Render(" - design engine plugins from the command line") + `

plugsmith keeps a plugin model (metadata, modules, nodes and editor
commands) in a state document and renders it into three artifacts:
a plugin descriptor (.uplugin), a specification (.json) and a
source scaffold (.h).

` + SubtitleStyle.Render("Quick Start:") + `
  1. Inspect the default model:     plugsmith show
  2. Name the plugin:               plugsmith meta set identifier LevelTools
  3. Add a node to a module:        plugsmith node add <module>
  4. Write the artifacts:           plugsmith export --out build

` + SubtitleStyle.Render("Examples:") + `
  plugsmith module list             List modules with selection markers
  plugsmith param add <m> <n> inputs
  plugsmith export --stdout --only scaffold
  plugsmith export --watch          Re-render when the model changes`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	pf.StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/plugsmith/config.cue)")
	pf.StringVar(&flags.stateDir, "state-dir", "", "directory holding the saved model (overrides state_dir)")

	rootCmd.AddCommand(
		newMetaCommand(app, flags),
		newModuleCommand(app, flags),
		newNodeCommand(app, flags),
		newParamCommand(app, flags),
		newEditorCommandCommand(app, flags),
		newResetCommand(app, flags),
		newShowCommand(app, flags),
		newExportCommand(app, flags),
		newConfigCommand(app, flags),
	)

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the production App and runs the command tree.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}

// errorHandler defers to fang's default except for failures runE has
// already rendered.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// runE renders a failing handler's error with its suggestions and converts
// it into an ExitError so fang does not print it a second time.
func (a *App) runE(flags *rootFlagValues, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		code := ExitFailure
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
			if exitErr.Err == nil {
				return exitErr
			}
		}

		fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, flags.verbose))

		var ae *issue.ActionableError
		if errors.As(err, &ae) {
			if entry := ae.CatalogIssue(); entry != nil {
				a.renderIssue(flags.cfg, flags.verbose, entry.Id())
			}
		}
		return &ExitError{Code: code}
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// usageError wraps err as an actionable patch error with the usage exit code.
func usageError(operation string, err error, suggestions ...string) error {
	ae := issue.NewErrorContext().
		WithOperation(operation).
		WithIssue(issue.InvalidPatchId).
		WithSuggestions(suggestions...).
		Wrap(err).
		Build()
	return &ExitError{Code: ExitUsage, Err: ae}
}
