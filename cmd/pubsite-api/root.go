package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pubsite-api",
	Short: "Publisher/website data service",
	Long: `pubsite-api serves publisher and website relational data over HTTP,
fronted by a Redis read-through cache with consistency-preserving
invalidation.`,
	Version: version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
