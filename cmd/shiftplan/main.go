package main

import (
	"os"

	"github.com/lseveri/shiftplan/pkg/interfaces/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
