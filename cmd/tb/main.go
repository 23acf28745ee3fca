package main

import (
	"fmt"
	"os"

	"taskboard/internal/cli"
)

func main() {
	factory := NewRepositoryFactory(getEnvironment())

	root := cli.NewRootCommand(factory.CreateRepository)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
