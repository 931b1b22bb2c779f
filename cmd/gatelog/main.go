package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gatelog/gatelog/pkg/config"
	"github.com/gatelog/gatelog/pkg/errors"
	"github.com/gatelog/gatelog/pkg/formatters"
	"github.com/gatelog/gatelog/pkg/logging"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "gatelog",
	Short: "Emit sample log lines through the gatelog façade",
	Long: `Loads the startup configuration, installs the process logger, and
emits one line per severity level plus one line per formatter adapter.
Useful for verifying a deployment's threshold and downstream collection.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "gatelog.yaml", "path to the YAML configuration file")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logging.SetLogger(cfg.BuildLogger())

	requestID := uuid.New().String()

	logging.Critical("demo start: request %s", formatters.View(requestID))
	logging.Error("lookup failed: %s", formatters.Code(errors.New(errors.ConfigNotFound, "no such key")))
	logging.Warning("threshold is %s", logging.ParseSeverity(cfg.Logging.Level))

	u, _ := url.Parse("https://example.com/redfish/v1?top=5")
	logging.Info("redirecting to %s", formatters.URL(u))
	logging.Debug("handler registered at %d", formatters.Ptr(&configPath))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
