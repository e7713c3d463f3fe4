// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"strconv"

	"github.com/plugsmith/plugsmith/pkg/ident"
)

const (
	// CloneSuffix is appended to the name of a cloned module.
	CloneSuffix = "Copy"

	defaultModuleName  = "MyPluginEditor"
	defaultNodeTitle   = "New Node"
	defaultNodeGroup   = "Utilities"
	defaultParamName   = "Value"
	defaultCommandName = "New Command"
	defaultContext     = "LevelEditor"
)

// DefaultMeta returns the metadata of a freshly reset model.
func DefaultMeta() Meta {
	return Meta{
		Title:         "My Plugin",
		Identifier:    "MyPlugin",
		Author:        "",
		Version:       "1.0",
		EngineVersion: "5.3.0",
		Category:      CategoryEditor,
		Description:   "Editor tooling generated with plugsmith.",
	}
}

// NewDefaultParameter returns a float parameter with a fresh id.
func NewDefaultParameter(ids ident.Generator) Parameter {
	return Parameter{
		ID:   ids.NewID(),
		Name: defaultParamName,
		Kind: KindFloat,
	}
}

// NewDefaultNode returns an empty node with a fresh id.
func NewDefaultNode(ids ident.Generator) Node {
	return Node{
		ID:          ids.NewID(),
		Title:       defaultNodeTitle,
		Category:    defaultNodeGroup,
		Description: "",
		Inputs:      []Parameter{},
		Outputs:     []Parameter{},
		Body:        "",
	}
}

// NewDefaultCommand returns an unbound command with a fresh id.
func NewDefaultCommand(ids ident.Generator) Command {
	return Command{
		ID:      ids.NewID(),
		Name:    defaultCommandName,
		Context: defaultContext,
	}
}

// NewDefaultModule returns a runtime module holding one default node and no
// commands. ordinal numbers the module name ("NewModule2", ...).
func NewDefaultModule(ids ident.Generator, ordinal int) Module {
	return Module{
		ID:           ids.NewID(),
		Name:         "NewModule" + strconv.Itoa(ordinal),
		Target:       TargetRuntime,
		Description:  "",
		Dependencies: []string{"Core", "CoreUObject", "Engine"},
		Nodes:        []Node{NewDefaultNode(ids)},
		Commands:     []Command{},
	}
}

// DefaultModel returns the initial model: one editor module with one example
// node and one example command, both selected.
func DefaultModel(ids ident.Generator) Model {
	node := Node{
		ID:          ids.NewID(),
		Title:       "Scale Value",
		Category:    defaultNodeGroup,
		Description: "Multiplies a value by a factor.",
		Inputs: []Parameter{
			{ID: ids.NewID(), Name: "Value", Kind: KindFloat},
			{ID: ids.NewID(), Name: "Factor", Kind: KindFloat, DefaultValue: Ptr("1.0")},
		},
		Outputs: []Parameter{
			{ID: ids.NewID(), Name: "Result", Kind: KindFloat},
		},
		Body: "Result = Value * Factor;",
	}
	cmd := Command{
		ID:          ids.NewID(),
		Name:        "Open Tool",
		Context:     defaultContext,
		Hotkey:      "Ctrl+Shift+T",
		Description: "Opens the plugin tool window.",
		Script:      "FGlobalTabmanager::Get()->TryInvokeTab(FName(\"MyPluginTool\"));",
	}
	mod := Module{
		ID:           ids.NewID(),
		Name:         defaultModuleName,
		Target:       TargetEditor,
		Description:  "Editor module hosting the plugin tools.",
		Dependencies: []string{"Core", "CoreUObject", "Engine", "Slate", "SlateCore", "UnrealEd"},
		Nodes:        []Node{node},
		Commands:     []Command{cmd},
	}
	return Model{
		Meta:             DefaultMeta(),
		Modules:          []Module{mod},
		SelectedModuleID: Ptr(mod.ID),
		SelectedNodeID:   Ptr(node.ID),
	}
}

// CloneModuleWithFreshIDs deep-copies mod, assigns a fresh id to the module and
// to every nested node, parameter and command, and appends CloneSuffix to the
// name.
func CloneModuleWithFreshIDs(mod Module, ids ident.Generator) Module {
	out := mod.Clone()
	out.ID = ids.NewID()
	out.Name = mod.Name + CloneSuffix
	for ni := range out.Nodes {
		n := &out.Nodes[ni]
		n.ID = ids.NewID()
		for pi := range n.Inputs {
			n.Inputs[pi].ID = ids.NewID()
		}
		for pi := range n.Outputs {
			n.Outputs[pi].ID = ids.NewID()
		}
	}
	for ci := range out.Commands {
		out.Commands[ci].ID = ids.NewID()
	}
	return out
}
