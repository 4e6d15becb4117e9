package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/projection/cli"
	"github.com/grovetools/projection/config"
)

// NewSchemaCmd creates the `schema` command
func NewSchemaCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"schema",
		"Print the JSON schema for projection.yml",
	)
	cmd.Long = `Outputs the JSON schema describing the projection.yml configuration file.
Point your editor's YAML language server at it for completion and
validation.`

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	return cmd
}
