package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie_catalog/database"
	"movie_catalog/router"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema, seed an empty catalog and serve the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		if err := database.Migrate(rt.db); err != nil {
			return err
		}
		rt.log.Info("database migrated")

		if rt.settings.Seed {
			if err := database.SeedData(rt.db, rt.log); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		app := router.New(rt.db, rt.log)
		addr := fmt.Sprintf(":%d", rt.settings.Port)

		errCh := make(chan error, 1)
		go func() {
			rt.log.Info("listening", zap.String("addr", addr))
			errCh <- app.Listen(addr)
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		rt.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	},
}
