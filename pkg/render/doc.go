// SPDX-License-Identifier: MPL-2.0

// Package render projects a plugin.Model into its three text artifacts.
//
// Every renderer is a pure function of its input: the same model always
// produces byte-identical output, nothing is cached between calls, and
// malformed or partially empty models degrade to structurally valid output
// instead of failing.
//
//   - Descriptor emits the engine's plugin descriptor ({identifier}.uplugin).
//   - Specification emits the whole model as JSON with parameters expanded
//     to a flat shape ({identifier}.json).
//   - Scaffold emits a source header with one declaration per node and one
//     binding per command ({identifier}.h).
package render
