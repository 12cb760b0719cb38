package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, cfg, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Store.Close()

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           a.Router(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errc := make(chan error, 1)
		go func() {
			log.Printf("Server running on http://localhost%s", cfg.Addr())
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
