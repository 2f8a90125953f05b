// Package main is the entry point for vmctl, the admin CLI that runs the
// article pipelines directly against the database.
package main

import (
	"os"

	"github.com/jsamuelsen11/go-viewmodel-service/cmd/vmctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
