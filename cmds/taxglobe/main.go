package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/safing/taxglobe/base/config"
	"github.com/safing/taxglobe/base/log"
)

var (
	configPath string
	datasetID  string
	logLevel   string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "taxglobe",
		Short: "Render tax policy datasets onto a globe",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			// Flags override the config file.
			if datasetID != "" {
				cfg.Dataset = datasetID
			}
			if logLevel != "" {
				if log.ParseLevel(logLevel) == 0 {
					return fmt.Errorf("invalid log level %q", logLevel)
				}
				cfg.Log.Level = logLevel
			}

			if err := log.Start(cfg.Log.Level, cfg.Log.File); err != nil {
				return err
			}
			stats, err = startMetrics(cfg)
			return err
		},
		SilenceUsage: true,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	{
		flags.StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the config file.")
		flags.StringVarP(&datasetID, "dataset", "d", "", "Dataset to show. Defaults to the dataset set in the config.")
		flags.StringVar(&logLevel, "log-level", "", "Sets the log level: trace, debug, info, warning, error or critical.")
		_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := rootCmd.ExecuteContext(ctx)
	stats.finish(err)
	log.Shutdown()
	if err != nil {
		cancel()
		os.Exit(1)
	}
}

// stdoutIsTerminal returns whether output tables can use colors.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
