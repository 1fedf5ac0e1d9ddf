package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/config"
	"github.com/wichananm65/plant-shop-storefront/internal/infrastructure/logging"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "ZenBotanic plant storefront",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine; the environment may already be set
		_ = godotenv.Load()
	},
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mustLogger(cfg config.Config) *zap.Logger {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
