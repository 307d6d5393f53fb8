package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirelens/hirelens/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n",
				app, version.Version, version.Commit, version.Date)
		},
	}
}
