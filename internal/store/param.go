// SPDX-License-Identifier: MPL-2.0

package store

import (
	"slices"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

func validPlacement(p plugin.Placement) bool {
	valid, _ := p.IsValid()
	return valid
}

// AddParameter appends a default parameter to the node's input or output
// list.
func (s *Store) AddParameter(moduleID, nodeID string, placement plugin.Placement) plugin.Model {
	return s.apply("add-parameter", func(m *plugin.Model) bool {
		_, n := findNode(m, moduleID, nodeID)
		if n == nil || !validPlacement(placement) {
			return false
		}
		n.SetParams(placement, append(n.Params(placement), plugin.NewDefaultParameter(s.ids)))
		return true
	})
}

// UpdateParameter merges the named fields of patch into the parameter.
func (s *Store) UpdateParameter(moduleID, nodeID string, placement plugin.Placement, paramID string, patch plugin.ParameterPatch) plugin.Model {
	return s.apply("update-parameter", func(m *plugin.Model) bool {
		_, n := findNode(m, moduleID, nodeID)
		if n == nil || !validPlacement(placement) {
			return false
		}
		if patch.Kind != nil {
			if valid, _ := patch.Kind.IsValid(); !valid {
				return false
			}
		}
		params := n.Params(placement)
		i := plugin.FindParam(params, paramID)
		if i < 0 {
			return false
		}
		params[i] = patch.Apply(params[i])
		return true
	})
}

// RemoveParameter removes the parameter, keeping the order of the others.
func (s *Store) RemoveParameter(moduleID, nodeID string, placement plugin.Placement, paramID string) plugin.Model {
	return s.apply("remove-parameter", func(m *plugin.Model) bool {
		_, n := findNode(m, moduleID, nodeID)
		if n == nil || !validPlacement(placement) {
			return false
		}
		params := n.Params(placement)
		i := plugin.FindParam(params, paramID)
		if i < 0 {
			return false
		}
		n.SetParams(placement, slices.Delete(params, i, i+1))
		return true
	})
}
