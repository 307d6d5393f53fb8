package main

import (
	"github.com/spf13/cobra"
)

const app = "hirelens"

var rootCmd = &cobra.Command{
	Use:           app,
	Short:         "hirelens ranks candidate resumes against a job description, with bias checks",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newVersionCmd())
}
