package main

import (
	"github.com/spf13/cobra"

	"github.com/articledry/dryer/version"
)

// rootFlags holds the flags shared by every subcommand.
type rootFlags struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "dryer",
		Short:         "Article processing service: fetch, analyze, and summarize text through plugin pipelines",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file")

	rootCmd.AddCommand(newServeCmd(flags))
	rootCmd.AddCommand(newProcessCmd(flags))
	return rootCmd
}
