// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/tks/tks/cmd/tks"

func main() {
	cmd.Execute()
}
