package cmd

import (
	"github.com/spf13/cobra"

	"github.com/grovetools/projection/cli"
	"github.com/grovetools/projection/version"
)

// NewVersionCmd creates the `version` command
func NewVersionCmd() *cobra.Command {
	info := version.GetInfo()
	return cli.NewVersionCommand("projection", cli.VersionInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		BuildArch: info.Platform,
	})
}
