package main

import (
	"os"

	"triptracker/cmd/triptracker/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
