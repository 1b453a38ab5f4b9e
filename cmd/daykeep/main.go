// Package main is the single-binary entrypoint for daykeep.
package main

import "github.com/daykeep/daykeep/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
