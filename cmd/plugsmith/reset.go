// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
)

func newResetCommand(app *App, flags *rootFlagValues) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the model with the default model",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			return app.mutate(cmd.Context(), flags, (*store.Store).Reset)
		}),
	}
}
