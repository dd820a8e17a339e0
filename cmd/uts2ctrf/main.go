package main

import (
	"context"
	"fmt"
	"os"

	"uts2ctrf/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRoot(version)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
