package main

import (
	"os"

	"github.com/grovetools/projection/cli"
	"github.com/grovetools/projection/cmd"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"projection",
		"Depth-axis scene navigation for the terminal",
	)

	// Add subcommands
	rootCmd.AddCommand(cmd.NewViewCmd())
	rootCmd.AddCommand(cmd.NewPanelsCmd())
	rootCmd.AddCommand(cmd.NewSchemaCmd())
	rootCmd.AddCommand(cmd.NewVersionCmd())

	cli.ApplyStyledHelpRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
