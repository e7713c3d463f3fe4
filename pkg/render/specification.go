// SPDX-License-Identifier: MPL-2.0

package render

import "github.com/plugsmith/plugsmith/pkg/plugin"

type (
	specDoc struct {
		Meta    plugin.Meta  `json:"meta"`
		Modules []specModule `json:"modules"`
	}

	specModule struct {
		ID           string           `json:"id"`
		Name         string           `json:"name"`
		Type         string           `json:"type"`
		Description  string           `json:"description"`
		Dependencies []string         `json:"dependencies"`
		Nodes        []specNode       `json:"nodes"`
		Commands     []plugin.Command `json:"commands"`
	}

	specNode struct {
		ID          string      `json:"id"`
		Title       string      `json:"title"`
		Category    string      `json:"category"`
		Description string      `json:"description"`
		Inputs      []specParam `json:"inputs"`
		Outputs     []specParam `json:"outputs"`
		Body        string      `json:"body"`
	}

	// specParam is the flat parameter shape: every optional field is
	// present with its default.
	specParam struct {
		Name         string `json:"name"`
		Type         string `json:"type"`
		IsArray      bool   `json:"isArray"`
		DefaultValue string `json:"defaultValue"`
		Description  string `json:"description"`
	}
)

func specParams(params []plugin.Parameter) []specParam {
	out := make([]specParam, 0, len(params))
	for _, p := range params {
		out = append(out, specParam{
			Name:         p.Name,
			Type:         string(p.Kind),
			IsArray:      plugin.Deref(p.IsArray),
			DefaultValue: plugin.Deref(p.DefaultValue),
			Description:  plugin.Deref(p.Description),
		})
	}
	return out
}

// Specification renders the full model as a structured document. Parameters
// are normalized so that isArray, defaultValue and description are always
// present; commands are emitted verbatim.
func Specification(m plugin.Model) string {
	doc := specDoc{
		Meta:    m.Meta,
		Modules: make([]specModule, 0, len(m.Modules)),
	}
	for _, mod := range m.Modules {
		sm := specModule{
			ID:           mod.ID,
			Name:         mod.Name,
			Type:         string(mod.Target),
			Description:  mod.Description,
			Dependencies: nonNil(mod.Dependencies),
			Nodes:        make([]specNode, 0, len(mod.Nodes)),
			Commands:     nonNil(mod.Commands),
		}
		for _, n := range mod.Nodes {
			sm.Nodes = append(sm.Nodes, specNode{
				ID:          n.ID,
				Title:       n.Title,
				Category:    n.Category,
				Description: n.Description,
				Inputs:      specParams(n.Inputs),
				Outputs:     specParams(n.Outputs),
				Body:        n.Body,
			})
		}
		doc.Modules = append(doc.Modules, sm)
	}
	return encodeJSON(doc)
}
