// Package server exposes the generated artifacts over HTTP for the static
// frontend during development. It serves files only; nothing is computed at
// request time.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/GumbaTW/DDNet-LB/internal/config"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const shutdownTimeout = 5 * time.Second

// Run wires the artifact file server into the fx lifecycle: listen on start,
// drain and stop on shutdown.
func Run(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) error {
	if _, err := os.Stat(cfg.ServeDir); err != nil {
		logger.Error().Str("dir", cfg.ServeDir).Msg("artifact directory not found")
		return fmt.Errorf("artifact directory not found: %s", cfg.ServeDir)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	handler := RequestID(logger)(c.Handler(http.FileServer(http.Dir(cfg.ServeDir))))

	srv := &http.Server{
		Addr:    cfg.ServeAddr,
		Handler: handler,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Str("dir", cfg.ServeDir).Msg("serving artifacts")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	})

	return nil
}
