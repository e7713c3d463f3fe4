// SPDX-License-Identifier: MPL-2.0

// Package testutil provides Must* helpers that fail the test on setup errors.
// Model builders and rapid generators live in the modeltest subpackage.
package testutil
