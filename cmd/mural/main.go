package main

import (
	"os"

	"mural/cmd/mural/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
