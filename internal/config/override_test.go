// SPDX-License-Identifier: MPL-2.0

package config

import "testing"

// overrideConfigDir points ConfigDir at dir until the test ends. Callers must
// not run in parallel with other tests that resolve ConfigDir.
func overrideConfigDir(t testing.TB, dir string) {
	t.Helper()
	configDirOverride = dir
	t.Cleanup(func() { configDirOverride = "" })
}
