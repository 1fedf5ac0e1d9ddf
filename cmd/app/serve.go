package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wichananm65/plant-shop-storefront/internal/config"
	"github.com/wichananm65/plant-shop-storefront/internal/preference"
	"github.com/wichananm65/plant-shop-storefront/internal/scheduler"
	"github.com/wichananm65/plant-shop-storefront/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}
		logger := mustLogger(cfg)
		defer logger.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, closeStore := preference.Open(ctx, preference.OpenConfig{
			Backend:     cfg.PreferencesBackend,
			DatabaseURL: cfg.DatabaseURL,
			RedisAddr:   cfg.RedisAddr,
			RedisPass:   cfg.RedisPass,
		}, logger)
		defer closeStore()

		srv := server.New(cfg, server.Deps{Preferences: store}, logger)
		srv.Catalog.Refresh(ctx)

		jobs := srv.Jobs(ctx)
		sched, err := scheduler.Start(jobs, logger)
		if err != nil {
			logger.Fatal("scheduler failed to start", zap.Error(err))
		}
		defer sched.Stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.App.ShutdownWithContext(shutdownCtx); err != nil {
				logger.Error("shutdown", zap.Error(err))
			}
		}()

		logger.Info("storefront listening", zap.String("addr", cfg.Addr), zap.String("preferences", cfg.PreferencesBackend))
		if err := srv.App.Listen(cfg.Addr); err != nil {
			logger.Error("listen", zap.Error(err))
		}
	},
}

func init() {
	serveCmd.Flags().StringP("addr", "a", "", "listen address (overrides STOREFRONT_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
