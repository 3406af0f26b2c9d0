package main

import (
	"os"

	"github.com/psantana5/benchtab/cmd/benchtab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
