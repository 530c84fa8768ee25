package main

import (
	"os"

	"github.com/pablasso/fillbar/internal/cli"
)

func main() {
	// With no args, play the configured scene; otherwise route to the CLI
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"play"}
	}
	if err := cli.Execute(args...); err != nil {
		os.Exit(1)
	}
}
