package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grovetools/projection/cli"
	"github.com/grovetools/projection/scene"
)

// NewPanelsCmd creates the `panels` command
func NewPanelsCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"panels <scene.yml>",
		"List the navigable panels of a scene",
	)
	cmd.Long = `Parses a scene file and prints its layers in navigation order, nearest
first. Useful for checking how depth annotations were resolved without
launching the viewer.

Examples:
  # List panels of a scene
  projection panels scene.yml

  # Machine-readable output
  projection panels scene.yml --json`

	cmd.Args = cobra.ExactArgs(1)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts := cli.GetOptions(cmd)
		handler := cli.NewErrorHandler(opts.Verbose)

		cfg, err := loadConfig(opts.ConfigFile)
		if err != nil {
			return handler.Handle(err)
		}

		doc, err := scene.LoadFile(args[0])
		if err != nil {
			return handler.Handle(err)
		}

		store, err := doc.Build(cfg.Scene.Prefix)
		if err != nil {
			return handler.Handle(err)
		}

		if opts.JSONOutput {
			type panelOut struct {
				Panel    int    `json:"panel"`
				ID       string `json:"id"`
				Depth    int    `json:"depth"`
				Children int    `json:"children"`
			}
			out := make([]panelOut, 0, store.Len())
			for i, layer := range store.Layers() {
				out = append(out, panelOut{
					Panel:    i,
					ID:       layer.ID,
					Depth:    layer.Depth,
					Children: len(layer.Children),
				})
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		for i, layer := range store.Layers() {
			line := fmt.Sprintf("%2d  %-20s depth %d", i, layer.ID, layer.Depth)
			if n := len(layer.Children); n > 0 {
				line += fmt.Sprintf("  (%d children)", n)
			}
			fmt.Println(strings.TrimRight(line, " "))
		}

		return nil
	}

	return cmd
}
