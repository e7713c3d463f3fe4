// SPDX-License-Identifier: MPL-2.0

// Package issue holds the user-facing error type and the catalog of known
// problems. An ActionableError carries suggestions and may link a catalog
// entry, whose Markdown guidance the CLI renders with glamour in verbose mode.
package issue
