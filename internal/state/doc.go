// SPDX-License-Identifier: MPL-2.0

// Package state persists the plugin model between runs.
//
// The whole model is stored as one JSON document under a fixed key. Restore
// never fails: a missing document, a document that does not match the
// embedded CUE schema, or a storage error all fall back to the default model,
// and the returned RestoreStatus tells the caller which case applied.
package state
