// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

// newEditorCommandCommand manages the hotkey-bound editor commands of a module.
func newEditorCommandCommand(app *App, flags *rootFlagValues) *cobra.Command {
	commandCmd := &cobra.Command{
		Use:   "command",
		Short: "Manage hotkey-bound editor commands inside a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	commandCmd.AddCommand(&cobra.Command{
		Use:   "add <module>",
		Short: "Append a default editor command",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.AddCommand(args[0])
			})
		}),
	})

	commandCmd.AddCommand(&cobra.Command{
		Use:   "set <module> <command> key=value...",
		Short: "Update editor command fields",
		Long: `Update editor command fields.

Keys: name, context, hotkey (e.g. Ctrl+Alt+P), description, script.`,
		Args: cobra.MinimumNArgs(3),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(args[2:])
			if err != nil {
				return usageError("update command", err)
			}
			patch, err := plugin.ParseCommandPatch(fields)
			if err != nil {
				return usageError("update command", err, "Keys: name, context, hotkey, description, script")
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.UpdateCommand(args[0], args[1], patch)
			})
		}),
	})

	commandCmd.AddCommand(&cobra.Command{
		Use:   "remove <module> <command>",
		Short: "Remove an editor command",
		Args:  cobra.ExactArgs(2),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.RemoveCommand(args[0], args[1])
			})
		}),
	})

	return commandCmd
}
