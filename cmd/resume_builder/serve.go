package main

import (
	"fmt"
	"time"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/spf13/cobra"
)

var (
	servePort          int
	serveConfigFile    string
	serveSecureCookies bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume builder web server",
	Long:  `Start an HTTP server that serves the resume wizard and exports resumes through headless Chrome.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, PORT, or 8080)")
	serveCmd.Flags().StringVarP(&serveConfigFile, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveSecureCookies, "secure-cookies", false, "Mark session cookies Secure (serve behind HTTPS)")
	rootCmd.AddCommand(serveCmd)
}

// serveConfig resolves the configuration; flags win over file, env and defaults.
func serveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Resolve(serveConfigFile)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveConfig(cmd)
	if err != nil {
		return err
	}
	logging.SetVerbose(cfg.Verbose)

	sessions, err := session.NewManager(session.Config{
		Secret:          cfg.SessionSecret,
		TTL:             cfg.SessionTTL(),
		CleanupInterval: 5 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}
	if cfg.SessionSecret == "" {
		logging.Warn("no session secret configured; sessions will not survive a restart")
	}

	exporter := export.New(
		export.NewChromeBrowser(export.ChromeOptions{ExecPath: cfg.ChromePath}),
		export.Options{
			MaxConcurrent: int64(cfg.MaxConcurrentExports),
			Timeout:       cfg.ExportTimeout(),
		},
	)

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		MaxUploadMemory: cfg.MaxUploadMemory(),
		SecureCookies:   serveSecureCookies,
		RateLimit:       ratelimit.LoadConfig(cfg.RateLimitPerMinute),
	}, sessions, exporter)
	if err != nil {
		sessions.Stop()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
