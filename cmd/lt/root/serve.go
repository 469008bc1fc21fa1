package root

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/serhangurakan/life-timer/internal/logging"
	"github.com/serhangurakan/life-timer/internal/store"
	syncsrv "github.com/serhangurakan/life-timer/internal/sync"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a sync server so other devices can share this timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := logging.Setup(cfg.Log.Level, cfg.Log.JSON)

			path := cfg.DBPath
			if path == "" {
				if path, err = store.DefaultDBPath(); err != nil {
					return err
				}
			}
			db, err := store.Open(ctx, path)
			if err != nil {
				return err
			}
			defer db.Close()

			srv := &http.Server{
				Addr:    addr,
				Handler: syncsrv.NewHandler(db, logger),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("sync server listening", "addr", addr, "db", path)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			logger.Info("sync server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8321", "Listen address")
	return cmd
}
