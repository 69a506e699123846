package main

import (
	"os"

	"github.com/tilikirja-dev/tilikirja/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
