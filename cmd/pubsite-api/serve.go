package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KOMKZ/go-pubsite-service/application"
)

var configPath string

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := application.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		app, err := application.New(cfg)
		if err != nil {
			return fmt.Errorf("assemble application: %w", err)
		}

		return app.Run()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c",
		"configs/pubsite-api/app.yaml", "path to the config file")
	rootCmd.AddCommand(serveCmd)
}
