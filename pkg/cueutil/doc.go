// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE validation and decoding.
//
// Both the persisted model document and the configuration file are checked
// against an embedded CUE schema before they are decoded into Go structs:
//
//  1. Compile the embedded schema
//  2. Compile (or encode) user data and unify it with the schema definition
//  3. Validate and decode to a Go struct
//
// JSON is a subset of CUE, so JSON documents go through ParseAndDecode
// unchanged. Data that was already decoded by another format (for example a
// TOML configuration file) goes through ValidateAndDecode.
//
// # Usage
//
//	//go:embed state_schema.cue
//	var schema []byte
//
//	result, err := cueutil.ParseAndDecode[plugin.Model](
//	    schema,
//	    data,
//	    "#State",
//	    cueutil.WithFilename("plugsmith-state.json"),
//	)
//	if err != nil {
//	    return err // *ValidationError with CUE paths, or a size error
//	}
//	return result.Value, nil
package cueutil
