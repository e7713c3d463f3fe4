// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func newParamCommand(app *App, flags *rootFlagValues) *cobra.Command {
	paramCmd := &cobra.Command{
		Use:   "param",
		Short: "Manage node inputs and outputs",
		Long: `Manage node inputs and outputs.

The placement argument is "inputs" or "outputs".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	paramCmd.AddCommand(&cobra.Command{
		Use:   "add <module> <node> <inputs|outputs>",
		Short: "Append a default parameter",
		Args:  cobra.ExactArgs(3),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			placement, err := plugin.ParsePlacement(args[2])
			if err != nil {
				return usageError("add parameter", err)
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.AddParameter(args[0], args[1], placement)
			})
		}),
	})

	paramCmd.AddCommand(&cobra.Command{
		Use:   "set <module> <node> <inputs|outputs> <param> key=value...",
		Short: "Update parameter fields",
		Long: `Update parameter fields.

Keys: name, type (` + kindList() + `), defaultValue, description,
isArray (true or false).`,
		Args: cobra.MinimumNArgs(5),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			placement, err := plugin.ParsePlacement(args[2])
			if err != nil {
				return usageError("update parameter", err)
			}
			fields, err := parseAssignments(args[4:])
			if err != nil {
				return usageError("update parameter", err)
			}
			patch, err := plugin.ParseParameterPatch(fields)
			if err != nil {
				return usageError("update parameter", err, "Keys: name, type, defaultValue, description, isArray")
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.UpdateParameter(args[0], args[1], placement, args[3], patch)
			})
		}),
	})

	paramCmd.AddCommand(&cobra.Command{
		Use:   "remove <module> <node> <inputs|outputs> <param>",
		Short: "Remove a parameter",
		Args:  cobra.ExactArgs(4),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			placement, err := plugin.ParsePlacement(args[2])
			if err != nil {
				return usageError("remove parameter", err)
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.RemoveParameter(args[0], args[1], placement, args[3])
			})
		}),
	})

	return paramCmd
}

func kindList() string {
	out := ""
	for i, k := range plugin.ParamKinds() {
		if i > 0 {
			out += ", "
		}
		out += k.String()
	}
	return out
}
