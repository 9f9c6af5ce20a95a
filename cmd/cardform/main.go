package main

import (
	"os"

	"github.com/goliatone/go-cardform/cmd/cardform/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
