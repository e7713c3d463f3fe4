// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/plugsmith/plugsmith/cmd/plugsmith"

func main() {
	cmd.Execute()
}
