// Package main is the entry point for the coursepeek CLI.
package main

import (
	"os"

	"github.com/coursepeek/coursepeek/cmd/coursepeek/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
