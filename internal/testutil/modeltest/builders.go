// SPDX-License-Identifier: MPL-2.0

package modeltest

import (
	"strconv"
	"sync/atomic"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

type (
	// ModuleOption configures a test module.
	ModuleOption func(*plugin.Module)

	// NodeOption configures a test node.
	NodeOption func(*plugin.Node)
)

var builderSeq atomic.Uint64

func nextID(prefix string) string {
	return prefix + "-" + strconv.FormatUint(builderSeq.Add(1), 10)
}

// NewTestModule creates an editor module with a unique id, no nodes, no
// commands and no dependencies.
func NewTestModule(name string, opts ...ModuleOption) plugin.Module {
	mod := plugin.Module{
		ID:           nextID("mod"),
		Name:         name,
		Target:       plugin.TargetEditor,
		Dependencies: []string{},
		Nodes:        []plugin.Node{},
		Commands:     []plugin.Command{},
	}
	for _, opt := range opts {
		opt(&mod)
	}
	return mod
}

// WithTarget sets the module target.
func WithTarget(target plugin.ModuleTarget) ModuleOption {
	return func(m *plugin.Module) { m.Target = target }
}

// WithDependencies replaces the dependency list.
func WithDependencies(deps ...string) ModuleOption {
	return func(m *plugin.Module) { m.Dependencies = append([]string{}, deps...) }
}

// WithNode appends a node.
func WithNode(n plugin.Node) ModuleOption {
	return func(m *plugin.Module) { m.Nodes = append(m.Nodes, n) }
}

// WithCommand appends a command with a unique id.
func WithCommand(name, hotkey, script string) ModuleOption {
	return func(m *plugin.Module) {
		m.Commands = append(m.Commands, plugin.Command{
			ID:      nextID("cmd"),
			Name:    name,
			Context: "LevelEditor",
			Hotkey:  hotkey,
			Script:  script,
		})
	}
}

// NewTestNode creates a node with a unique id and empty parameter lists.
func NewTestNode(title string, opts ...NodeOption) plugin.Node {
	n := plugin.Node{
		ID:       nextID("node"),
		Title:    title,
		Category: "Test",
		Inputs:   []plugin.Parameter{},
		Outputs:  []plugin.Parameter{},
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// WithInput appends an input parameter.
func WithInput(name string, kind plugin.ParamKind) NodeOption {
	return func(n *plugin.Node) {
		n.Inputs = append(n.Inputs, plugin.Parameter{ID: nextID("param"), Name: name, Kind: kind})
	}
}

// WithOutput appends an output parameter.
func WithOutput(name string, kind plugin.ParamKind) NodeOption {
	return func(n *plugin.Node) {
		n.Outputs = append(n.Outputs, plugin.Parameter{ID: nextID("param"), Name: name, Kind: kind})
	}
}

// WithBody sets the node body fragment.
func WithBody(body string) NodeOption {
	return func(n *plugin.Node) { n.Body = body }
}

// NewTestModel wraps modules in a model with default meta and selects the
// first module and its first node.
func NewTestModel(mods ...plugin.Module) plugin.Model {
	m := plugin.Model{
		Meta:    plugin.DefaultMeta(),
		Modules: append([]plugin.Module{}, mods...),
	}
	if len(mods) > 0 {
		m.SelectedModuleID = plugin.Ptr(mods[0].ID)
		m.SelectedNodeID = mods[0].FirstNodeID()
	}
	return m
}

// WithoutIDs returns a deep copy of mod with the module id and every nested
// node, parameter and command id cleared, for comparing structure only.
func WithoutIDs(mod plugin.Module) plugin.Module {
	out := mod.Clone()
	out.ID = ""
	for ni := range out.Nodes {
		n := &out.Nodes[ni]
		n.ID = ""
		for pi := range n.Inputs {
			n.Inputs[pi].ID = ""
		}
		for pi := range n.Outputs {
			n.Outputs[pi].ID = ""
		}
	}
	for ci := range out.Commands {
		out.Commands[ci].ID = ""
	}
	return out
}
