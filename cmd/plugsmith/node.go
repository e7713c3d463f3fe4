// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func newNodeCommand(app *App, flags *rootFlagValues) *cobra.Command {
	nodeCmd := &cobra.Command{
		Use:   "node",
		Short: "Manage node definitions inside a module",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	nodeCmd.AddCommand(&cobra.Command{
		Use:   "add <module>",
		Short: "Append a default node and select it",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.AddNode(args[0])
			})
		}),
	})

	nodeCmd.AddCommand(&cobra.Command{
		Use:   "set <module> <node> key=value...",
		Short: "Update node fields",
		Long: `Update node fields.

Keys: title, category, description, body.`,
		Args: cobra.MinimumNArgs(3),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(args[2:])
			if err != nil {
				return usageError("update node", err)
			}
			patch, err := plugin.ParseNodePatch(fields)
			if err != nil {
				return usageError("update node", err, "Keys: title, category, description, body")
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.UpdateNode(args[0], args[1], patch)
			})
		}),
	})

	nodeCmd.AddCommand(&cobra.Command{
		Use:   "remove <module> <node>",
		Short: "Remove a node",
		Args:  cobra.ExactArgs(2),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.RemoveNode(args[0], args[1])
			})
		}),
	})

	nodeCmd.AddCommand(&cobra.Command{
		Use:   "select <node|none>",
		Short: "Select a node of the selected module",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.SelectNode(selectionArg(args[0]))
			})
		}),
	})

	return nodeCmd
}
