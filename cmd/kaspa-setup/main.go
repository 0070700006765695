// Package main is the entry point for the Kaspa setup tool.
package main

import "kaspa-setup-tool/cmd/kaspa-setup/cmd"

func main() {
	cmd.Execute()
}
