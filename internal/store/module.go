// SPDX-License-Identifier: MPL-2.0

package store

import (
	"slices"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

// AddModule appends a default module holding one default node and selects
// both.
func (s *Store) AddModule() plugin.Model {
	return s.apply("add-module", func(m *plugin.Model) bool {
		mod := plugin.NewDefaultModule(s.ids, len(m.Modules)+1)
		m.Modules = append(m.Modules, mod)
		selectModule(m, &m.Modules[len(m.Modules)-1])
		return true
	})
}

// CloneModule appends a deep copy of the module with fresh ids for every
// nested entity and selects the copy.
func (s *Store) CloneModule(id string) plugin.Model {
	return s.apply("clone-module", func(m *plugin.Model) bool {
		i := m.FindModule(id)
		if i < 0 {
			return false
		}
		m.Modules = append(m.Modules, plugin.CloneModuleWithFreshIDs(m.Modules[i], s.ids))
		selectModule(m, &m.Modules[len(m.Modules)-1])
		return true
	})
}

// UpdateModule merges the named fields of patch into the module.
func (s *Store) UpdateModule(id string, patch plugin.ModulePatch) plugin.Model {
	return s.apply("update-module", func(m *plugin.Model) bool {
		i := m.FindModule(id)
		if i < 0 {
			return false
		}
		if patch.Target != nil {
			if valid, _ := patch.Target.IsValid(); !valid {
				return false
			}
		}
		m.Modules[i] = patch.Apply(m.Modules[i])
		return true
	})
}

// RemoveModule removes the module with everything it owns and selects the
// last remaining module, or nothing.
func (s *Store) RemoveModule(id string) plugin.Model {
	return s.apply("remove-module", func(m *plugin.Model) bool {
		i := m.FindModule(id)
		if i < 0 {
			return false
		}
		m.Modules = slices.Delete(m.Modules, i, i+1)
		if len(m.Modules) == 0 {
			selectModule(m, nil)
			return true
		}
		selectModule(m, &m.Modules[len(m.Modules)-1])
		return true
	})
}
