// SPDX-License-Identifier: MPL-2.0

package store

import (
	"slices"

	"github.com/plugsmith/plugsmith/pkg/plugin"
)

// AddCommand appends a default command to the module.
func (s *Store) AddCommand(moduleID string) plugin.Model {
	return s.apply("add-command", func(m *plugin.Model) bool {
		mod := findModule(m, moduleID)
		if mod == nil {
			return false
		}
		mod.Commands = append(mod.Commands, plugin.NewDefaultCommand(s.ids))
		return true
	})
}

// UpdateCommand merges the named fields of patch into the command.
func (s *Store) UpdateCommand(moduleID, commandID string, patch plugin.CommandPatch) plugin.Model {
	return s.apply("update-command", func(m *plugin.Model) bool {
		mod := findModule(m, moduleID)
		if mod == nil {
			return false
		}
		i := mod.FindCommand(commandID)
		if i < 0 {
			return false
		}
		mod.Commands[i] = patch.Apply(mod.Commands[i])
		return true
	})
}

// RemoveCommand removes the command, keeping the order of the others.
func (s *Store) RemoveCommand(moduleID, commandID string) plugin.Model {
	return s.apply("remove-command", func(m *plugin.Model) bool {
		mod := findModule(m, moduleID)
		if mod == nil {
			return false
		}
		i := mod.FindCommand(commandID)
		if i < 0 {
			return false
		}
		mod.Commands = slices.Delete(mod.Commands, i, i+1)
		return true
	})
}
