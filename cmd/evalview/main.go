package main

import (
	"os"

	"github.com/C0deXG/model-evalV7/cmd/evalview/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
