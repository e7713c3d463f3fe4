// SPDX-License-Identifier: MPL-2.0

// Package store owns the live plugin model and exposes the mutation API.
//
// A Store is the only writer of its model. Every operation runs to completion
// under a mutex, applies a shallow patch or structural change, re-derives the
// selection and returns a deep-copied snapshot of the result. Operations that
// reference an id which does not exist are silent no-ops: they are logged at
// debug level and return the unchanged snapshot.
//
// Observers registered with WithObserver run synchronously after each
// effective mutation. Their errors are logged at warn level and otherwise
// ignored, so a failing persistence layer never breaks the mutation path.
package store
