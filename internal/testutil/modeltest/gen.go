// SPDX-License-Identifier: MPL-2.0

package modeltest

import (
	"github.com/plugsmith/plugsmith/pkg/ident"
	"github.com/plugsmith/plugsmith/pkg/plugin"

	"pgregory.net/rapid"
)

// textGen draws short printable text, including characters that need JSON
// escaping and the "+" hotkey separator.
func textGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9 _+"\\/*\n-]{0,12}`)
}

func paramGen(ids ident.Generator) *rapid.Generator[plugin.Parameter] {
	return rapid.Custom(func(t *rapid.T) plugin.Parameter {
		return plugin.Parameter{
			ID:           ids.NewID(),
			Name:         textGen().Draw(t, "name"),
			Kind:         rapid.SampledFrom(plugin.ParamKinds()).Draw(t, "kind"),
			DefaultValue: rapid.Ptr(textGen(), true).Draw(t, "default"),
			Description:  rapid.Ptr(textGen(), true).Draw(t, "description"),
			IsArray:      rapid.Ptr(rapid.Bool(), true).Draw(t, "isArray"),
		}
	})
}

func nodeGen(ids ident.Generator) *rapid.Generator[plugin.Node] {
	return rapid.Custom(func(t *rapid.T) plugin.Node {
		return plugin.Node{
			ID:          ids.NewID(),
			Title:       textGen().Draw(t, "title"),
			Category:    textGen().Draw(t, "category"),
			Description: textGen().Draw(t, "description"),
			Inputs:      rapid.SliceOfN(paramGen(ids), 0, 3).Draw(t, "inputs"),
			Outputs:     rapid.SliceOfN(paramGen(ids), 0, 3).Draw(t, "outputs"),
			Body:        textGen().Draw(t, "body"),
		}
	})
}

func commandGen(ids ident.Generator) *rapid.Generator[plugin.Command] {
	return rapid.Custom(func(t *rapid.T) plugin.Command {
		return plugin.Command{
			ID:          ids.NewID(),
			Name:        textGen().Draw(t, "name"),
			Context:     textGen().Draw(t, "context"),
			Hotkey:      textGen().Draw(t, "hotkey"),
			Description: textGen().Draw(t, "description"),
			Script:      textGen().Draw(t, "script"),
		}
	})
}

// ModuleGen draws a module whose ids come from ids.
func ModuleGen(ids ident.Generator) *rapid.Generator[plugin.Module] {
	return rapid.Custom(func(t *rapid.T) plugin.Module {
		return plugin.Module{
			ID:           ids.NewID(),
			Name:         textGen().Draw(t, "name"),
			Target:       rapid.SampledFrom(plugin.ModuleTargets()).Draw(t, "target"),
			Description:  textGen().Draw(t, "description"),
			Dependencies: rapid.SliceOfN(textGen(), 0, 3).Draw(t, "dependencies"),
			Nodes:        rapid.SliceOfN(nodeGen(ids), 0, 3).Draw(t, "nodes"),
			Commands:     rapid.SliceOfN(commandGen(ids), 0, 2).Draw(t, "commands"),
		}
	})
}

// ModelGen draws a structurally valid model: ids are unique and the
// selection is consistent.
func ModelGen() *rapid.Generator[plugin.Model] {
	return rapid.Custom(func(t *rapid.T) plugin.Model {
		ids := ident.NewSequence("gen")
		m := plugin.Model{
			Meta: plugin.Meta{
				Title:         textGen().Draw(t, "title"),
				Identifier:    rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,8}`).Draw(t, "identifier"),
				Author:        textGen().Draw(t, "author"),
				Version:       textGen().Draw(t, "version"),
				EngineVersion: textGen().Draw(t, "engineVersion"),
				Category:      rapid.SampledFrom(plugin.Categories()).Draw(t, "category"),
				Description:   textGen().Draw(t, "description"),
			},
			Modules: rapid.SliceOfN(ModuleGen(ids), 0, 3).Draw(t, "modules"),
		}
		if len(m.Modules) > 0 {
			i := rapid.IntRange(0, len(m.Modules)-1).Draw(t, "selected")
			m.SelectedModuleID = plugin.Ptr(m.Modules[i].ID)
			m.SelectedNodeID = m.Modules[i].FirstNodeID()
		}
		return m
	})
}
