package main

import (
	"os"

	"convexhull/cmd/convexhull/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
