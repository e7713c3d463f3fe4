// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func newModuleCommand(app *App, flags *rootFlagValues) *cobra.Command {
	moduleCmd := &cobra.Command{
		Use:   "module",
		Short: "Manage plugin modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List modules; the selected one is marked",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			sess, err := app.open(cmd.Context(), flags)
			if err != nil {
				return err
			}
			m := sess.store.Snapshot()
			if len(m.Modules) == 0 {
				fmt.Fprintln(app.stdout, SubtitleStyle.Render("(no modules)"))
				return nil
			}
			for _, mod := range m.Modules {
				marker := "  "
				name := mod.Name
				if m.SelectedModuleID != nil && *m.SelectedModuleID == mod.ID {
					marker = selectedStyle.Render("* ")
					name = selectedStyle.Render(name)
				}
				fmt.Fprintf(app.stdout, "%s%s %s %s\n", marker, name, idStyle.Render(mod.ID),
					SubtitleStyle.Render(fmt.Sprintf("[%s, %d node(s), %d command(s)]", mod.Target, len(mod.Nodes), len(mod.Commands))))
			}
			return nil
		}),
	})

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append a default module and select it",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			return app.mutate(cmd.Context(), flags, (*store.Store).AddModule)
		}),
	})

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "clone <module>",
		Short: "Deep-copy a module with fresh ids and select the copy",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.CloneModule(args[0])
			})
		}),
	})

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "set <module> key=value...",
		Short: "Update module fields",
		Long: `Update module fields.

Keys: name, type (` + targetList() + `), description,
dependencies (comma separated).`,
		Args: cobra.MinimumNArgs(2),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			fields, err := parseAssignments(args[1:])
			if err != nil {
				return usageError("update module", err)
			}
			patch, err := plugin.ParseModulePatch(fields)
			if err != nil {
				return usageError("update module", err, "Keys: name, type, description, dependencies")
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.UpdateModule(args[0], patch)
			})
		}),
	})

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "remove <module>",
		Short: "Remove a module with its nodes and commands",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.RemoveModule(args[0])
			})
		}),
	})

	moduleCmd.AddCommand(&cobra.Command{
		Use:   "select <module|none>",
		Short: "Select a module (and its first node)",
		Args:  cobra.ExactArgs(1),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.SelectModule(selectionArg(args[0]))
			})
		}),
	})

	return moduleCmd
}

func targetList() string {
	out := ""
	for i, t := range plugin.ModuleTargets() {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out
}
