// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/config"
)

// newConfigCommand creates the `plugsmith config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App, flags *rootFlagValues) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage plugsmith configuration",
		Long: `Manage plugsmith configuration.

Configuration is stored in:
  - Linux: ~/.config/plugsmith/config.cue
  - macOS: ~/Library/Application Support/plugsmith/config.cue
  - Windows: %APPDATA%\plugsmith\config.cue

A config.toml in the same directory is read when no config.cue exists.
PLUGSMITH_* environment variables override file values, for example
PLUGSMITH_LOG_LEVEL=debug or PLUGSMITH_SCAFFOLD_CONTROL_TOKEN=Ctrl.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			path, err := config.FindConfigFile(config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}

			keyStyle := CmdStyle
			valueStyle := SuccessStyle

			fmt.Fprintln(app.stdout, TitleStyle.Render("Current Configuration"))
			fmt.Fprintln(app.stdout)
			if path == "" {
				fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
			} else {
				fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
			}
			fmt.Fprintln(app.stdout)

			fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("state_dir"), valueStyle.Render(cfg.StateDir.String()))
			fmt.Fprintf(app.stdout, "%s: %s\n", keyStyle.Render("output_dir"), valueStyle.Render(cfg.OutputDir.String()))

			fmt.Fprintln(app.stdout)
			fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("scaffold"))
			fmt.Fprintf(app.stdout, "  control_token: %s\n", valueStyle.Render(cfg.Scaffold.ControlToken))
			fmt.Fprintf(app.stdout, "  separator: %s\n", valueStyle.Render(fmt.Sprintf("%q", cfg.Scaffold.Separator)))
			fmt.Fprintf(app.stdout, "  placeholder: %s\n", valueStyle.Render(cfg.Scaffold.Placeholder))

			fmt.Fprintln(app.stdout)
			fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("ui"))
			fmt.Fprintf(app.stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
			fmt.Fprintf(app.stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

			fmt.Fprintln(app.stdout)
			fmt.Fprintf(app.stdout, "%s:\n", keyStyle.Render("log"))
			fmt.Fprintf(app.stdout, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory and the file in use",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config directory"), dir)

			path, err := config.FindConfigFile(config.LoadOptions{ConfigFilePath: flags.configPath})
			if err != nil {
				return err
			}
			if path == "" {
				path = SubtitleStyle.Render("(none, using defaults)")
			}
			fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render("Config file"), path)
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			path, created, err := config.CreateDefaultConfig()
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(app.stdout, "%s %s\n", WarningStyle.Render("Configuration already exists:"), path)
				return nil
			}
			fmt.Fprintf(app.stdout, "%s %s\n", SuccessStyle.Render("Created configuration:"), path)
			return nil
		}),
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context(), flags)
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		}),
	})

	return cfgCmd
}
