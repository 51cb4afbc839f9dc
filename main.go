// Package main is the entry point for the openheader CLI.
package main

import "openheader.dev/pkg/openheader/cmd"

func main() {
	cmd.Execute()
}
