// SPDX-License-Identifier: MPL-2.0

package store

import (
	"slices"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func findModule(m *plugin.Model, moduleID string) *plugin.Module {
	i := m.FindModule(moduleID)
	if i < 0 {
		return nil
	}
	return &m.Modules[i]
}

func findNode(m *plugin.Model, moduleID, nodeID string) (*plugin.Module, *plugin.Node) {
	mod := findModule(m, moduleID)
	if mod == nil {
		return nil, nil
	}
	i := mod.FindNode(nodeID)
	if i < 0 {
		return mod, nil
	}
	return mod, &mod.Nodes[i]
}

// AddNode appends a default node to the module and selects it. The module
// becomes the selected module.
func (s *Store) AddNode(moduleID string) plugin.Model {
	return s.apply("add-node", func(m *plugin.Model) bool {
		mod := findModule(m, moduleID)
		if mod == nil {
			return false
		}
		n := plugin.NewDefaultNode(s.ids)
		mod.Nodes = append(mod.Nodes, n)
		m.SelectedModuleID = plugin.Ptr(mod.ID)
		m.SelectedNodeID = plugin.Ptr(n.ID)
		return true
	})
}

// UpdateNode merges the named fields of patch into the node.
func (s *Store) UpdateNode(moduleID, nodeID string, patch plugin.NodePatch) plugin.Model {
	return s.apply("update-node", func(m *plugin.Model) bool {
		_, n := findNode(m, moduleID, nodeID)
		if n == nil {
			return false
		}
		*n = patch.Apply(*n)
		return true
	})
}

// RemoveNode removes the node and its parameters, then selects the module and
// its first remaining node.
func (s *Store) RemoveNode(moduleID, nodeID string) plugin.Model {
	return s.apply("remove-node", func(m *plugin.Model) bool {
		mod := findModule(m, moduleID)
		if mod == nil {
			return false
		}
		i := mod.FindNode(nodeID)
		if i < 0 {
			return false
		}
		mod.Nodes = slices.Delete(mod.Nodes, i, i+1)
		selectModule(m, mod)
		return true
	})
}
