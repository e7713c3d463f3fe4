// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/plugsmith/plugsmith/internal/state"
	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func newShowCommand(app *App, flags *rootFlagValues) *cobra.Command {
	var asJSON bool

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the model as a tree with ids and selection markers",
		Args:  cobra.NoArgs,
		RunE: app.runE(flags, func(cmd *cobra.Command, _ []string) error {
			sess, err := app.open(cmd.Context(), flags)
			if err != nil {
				return err
			}
			m := sess.store.Snapshot()
			if asJSON {
				data, err := state.Encode(m)
				if err != nil {
					return err
				}
				_, err = app.stdout.Write(data)
				return err
			}
			fmt.Fprintln(app.stdout, modelTree(m))
			if sess.verbose {
				fmt.Fprintln(app.stdout, VerboseStyle.Render(fmt.Sprintf("state: %s (%s)", sess.stateDir, sess.status)))
			}
			return nil
		}),
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "print the saved state document instead of the tree")

	return showCmd
}

// modelTree renders the model as a lipgloss tree. The selected module and
// node are marked with "*".
func modelTree(m plugin.Model) *tree.Tree {
	title := m.Meta.Title
	if title == "" {
		title = "(untitled)"
	}
	root := tree.Root(TitleStyle.Render(title) + " " +
		SubtitleStyle.Render(fmt.Sprintf("%s %s [%s]", m.Meta.Identifier, m.Meta.Version, m.Meta.Category))).
		EnumeratorStyle(treeEnumeratorStyle)

	for _, mod := range m.Modules {
		selected := m.SelectedModuleID != nil && *m.SelectedModuleID == mod.ID
		modTree := tree.Root(label(selected, mod.Name, mod.ID, string(mod.Target)))

		for _, n := range mod.Nodes {
			nodeSelected := selected && m.SelectedNodeID != nil && *m.SelectedNodeID == n.ID
			nodeTree := tree.Root(label(nodeSelected, n.Title, n.ID, n.Category))
			for _, p := range n.Inputs {
				nodeTree.Child("in  " + paramLabel(p))
			}
			for _, p := range n.Outputs {
				nodeTree.Child("out " + paramLabel(p))
			}
			modTree.Child(nodeTree)
		}
		for _, c := range mod.Commands {
			hotkey := c.Hotkey
			if hotkey == "" {
				hotkey = "no hotkey"
			}
			modTree.Child("cmd " + label(false, c.Name, c.ID, hotkey))
		}
		if len(mod.Dependencies) > 0 {
			modTree.Child(SubtitleStyle.Render("deps: " + strings.Join(mod.Dependencies, ", ")))
		}
		root.Child(modTree)
	}
	return root
}

func label(selected bool, name, id, detail string) string {
	marker := ""
	if selected {
		marker = selectedStyle.Render("* ")
		name = selectedStyle.Render(name)
	}
	s := marker + name + " " + idStyle.Render(id)
	if detail != "" {
		s += " " + SubtitleStyle.Render("["+detail+"]")
	}
	return s
}

func paramLabel(p plugin.Parameter) string {
	kind := p.Kind.String()
	if plugin.Deref(p.IsArray) {
		kind += "[]"
	}
	s := p.Name + ": " + kind
	if p.DefaultValue != nil {
		s += " = " + *p.DefaultValue
	}
	return s + " " + idStyle.Render(p.ID)
}
