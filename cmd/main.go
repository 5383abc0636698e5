package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// plannerConfigPath overrides PLANNER_CONFIG_PATH when set.
var plannerConfigPath string

var rootCmd = &cobra.Command{
	Use:   "semplanner",
	Short: "SEM plan builder service",
	Long: `semplanner synthesizes keyword research data, groups it into search,
shopping and Performance Max campaign structures and stores the resulting
plans.

Configuration comes from environment variables (and a .env file when
present). Planner tunables may be overridden with a YAML file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&plannerConfigPath, "config", "", "planner settings YAML (overrides PLANNER_CONFIG_PATH)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, keywordsCmd)
}

// main is the entry point of the semplanner binary. Commands run under a
// context cancelled by SIGINT or SIGTERM.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("command failed", slog.Any("error", err))
		}
		cancel()
		os.Exit(1)
	}
}
