/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the pay breakdown API server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env, environment, then flags)
  2. Build the logger
  3. Load the rate table (defaults when no file is given)
  4. Configure HTTP router
  5. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (overrides PORT)
  -rates   JSON rate table file (overrides RATES_FILE)

ENVIRONMENT:
  APP_ENV, PORT, LOG_LEVEL, RATES_FILE, RATE_LIMIT_PER_MINUTE,
  CORS_ALLOWED_ORIGINS, SHUTDOWN_TIMEOUT_SECONDS (see config/config.go)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (SHUTDOWN_TIMEOUT_SECONDS)
  3. Exit

EXAMPLES:
  # Run with custom rates on a different port
  ./server -port=3000 -rates=./rates.json

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - factory/rates.go: Rate table format
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/warp/shift-pay/api"
	"github.com/warp/shift-pay/config"
	"github.com/warp/shift-pay/factory"
	"github.com/warp/shift-pay/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags
	port := flag.Int("port", cfg.Port, "HTTP server port")
	ratesFile := flag.String("rates", cfg.RatesFile, "JSON rate table file (default rates when empty)")
	flag.Parse()
	cfg.Port = *port
	cfg.RatesFile = *ratesFile

	log := logging.New(cfg.Env, cfg.LogLevel)

	// Initialize calculator
	calc, err := factory.NewRateFactory().Calculator(cfg.RatesFile)
	if err != nil {
		log.WithError(err).WithField("rates_file", cfg.RatesFile).Fatal("Failed to load rates")
	}

	handler := api.NewHandler(calc, log)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins:     cfg.AllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithFields(logrus.Fields{
			"port":       cfg.Port,
			"env":        cfg.Env,
			"rates_file": cfg.RatesFile,
		}).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server stopped")
}
