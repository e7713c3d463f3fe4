// SPDX-License-Identifier: MPL-2.0

// Package plugin defines the normalized plugin design model.
//
// A [Model] holds the plugin [Meta] singleton, an ordered list of [Module]
// values and the current selection. Modules own [Node] and [Command] values;
// nodes own their input and output [Parameter] lists. Every identifier is an
// opaque string unique across the whole model.
//
// # Invariants
//
//   - Identifiers are unique model-wide.
//   - SelectedNodeID, when set, references a node of the module referenced by
//     SelectedModuleID.
//   - List order is insertion order; removals never reorder survivors.
//
// # Patches
//
// Entities are updated through shallow-merge patches ([ModulePatch],
// [NodePatch], [ParameterPatch], [CommandPatch]) that only name declared
// fields. String-keyed input (for example "name=Foo" from the CLI) is decoded
// with the Parse*Patch functions, which reject unknown field names with an
// [UnknownFieldError]. The mutation layer therefore never sees an unknown
// field.
package plugin
