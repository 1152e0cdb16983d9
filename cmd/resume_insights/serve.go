package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insights/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for processing resumes and reading candidate profiles.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	rt, err := buildRuntime(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer rt.close()

	var profiles server.ProfileGetter
	if rt.database != nil {
		profiles = rt.database
	}

	srv := server.New(server.Config{Port: cfg.Port}, rt.service, profiles, rt.logger)
	return srv.Start()
}
