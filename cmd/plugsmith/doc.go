// SPDX-License-Identifier: MPL-2.0

// Package cmd is the plugsmith command tree. Each mutating subcommand
// restores the saved model, applies exactly one Store operation and lets the
// Store's persistence observer save the result.
package cmd
