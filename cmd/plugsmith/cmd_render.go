// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

// noneArg clears a selection in the select subcommands.
const noneArg = "none"

// printSelection writes the selected module and node after a mutation.
func printSelection(w io.Writer, m plugin.Model) {
	mod := m.SelectedModule()
	if mod == nil {
		fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("module:"), SubtitleStyle.Render("(none)"))
		fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("node:  "), SubtitleStyle.Render("(none)"))
		return
	}
	fmt.Fprintf(w, "%s %s %s\n", CmdStyle.Render("module:"), mod.Name, idStyle.Render(mod.ID))

	i := mod.FindNode(plugin.Deref(m.SelectedNodeID))
	if m.SelectedNodeID == nil || i < 0 {
		fmt.Fprintf(w, "%s %s\n", CmdStyle.Render("node:  "), SubtitleStyle.Render("(none)"))
		return
	}
	node := mod.Nodes[i]
	fmt.Fprintf(w, "%s %s %s\n", CmdStyle.Render("node:  "), node.Title, idStyle.Render(node.ID))
}

// parseAssignments turns key=value arguments into a patch field map. Values
// may contain '='; keys may not repeat.
func parseAssignments(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no fields given")
	}
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		if _, dup := fields[key]; dup {
			return nil, fmt.Errorf("field %q given more than once", key)
		}
		fields[key] = value
	}
	return fields, nil
}

// selectionArg maps the "none" keyword to a nil selection.
func selectionArg(arg string) *string {
	if arg == noneArg {
		return nil
	}
	return plugin.Ptr(arg)
}
