package main

import (
	"os"

	"github.com/goliatone/go-dynamicform/cmd/dynamicform/commands"
)

var version = "dev"

func main() {
	commands.SetVersion(version)
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
