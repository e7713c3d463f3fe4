// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/store"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func newMetaCommand(app *App, flags *rootFlagValues) *cobra.Command {
	metaCmd := &cobra.Command{
		Use:   "meta",
		Short: "Show or edit plugin metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	metaCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show plugin metadata",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			sess, err := app.open(cmd.Context(), flags)
			if err != nil {
				return err
			}
			meta := sess.store.Snapshot().Meta
			values := map[plugin.MetaField]string{
				plugin.MetaTitle:         meta.Title,
				plugin.MetaIdentifier:    meta.Identifier,
				plugin.MetaAuthor:        meta.Author,
				plugin.MetaVersion:       meta.Version,
				plugin.MetaEngineVersion: meta.EngineVersion,
				plugin.MetaCategory:      meta.Category.String(),
				plugin.MetaDescription:   meta.Description,
			}
			for _, field := range plugin.MetaFields() {
				fmt.Fprintf(app.stdout, "%s: %s\n", CmdStyle.Render(field.String()), values[field])
			}
			return nil
		}),
	})

	metaCmd.AddCommand(&cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set one metadata field",
		Long: `Set one metadata field.

Fields: ` + metaFieldList() + `

The category must be one of: ` + categoryList() + `.`,
		Args: cobra.ExactArgs(2),
		RunE: app.runE(flags, func(cmd *cobra.Command, args []string) error {
			field, err := plugin.ParseMetaField(args[0])
			if err != nil {
				return usageError("set metadata", err, "Valid fields: "+metaFieldList())
			}
			if field == plugin.MetaCategory {
				if valid, errs := plugin.Category(args[1]).IsValid(); !valid {
					return usageError("set metadata", errs[0], "Valid categories: "+categoryList())
				}
			}
			return app.mutate(cmd.Context(), flags, func(s *store.Store) plugin.Model {
				return s.UpdateMeta(field, args[1])
			})
		}),
	})

	return metaCmd
}

func metaFieldList() string {
	names := make([]string, 0, len(plugin.MetaFields()))
	for _, f := range plugin.MetaFields() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

func categoryList() string {
	names := make([]string, 0, len(plugin.Categories()))
	for _, c := range plugin.Categories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
