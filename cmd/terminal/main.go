package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Local Packages
	config "tap-terminal/config"
	router "tap-terminal/router"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

func main() {
	configPath := kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()
	demo := kingpin.Flag("demo", "Use in-memory backends instead of redis, mongo and kafka").Bool()
	kingpin.Parse()

	k, appKonf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	if *demo {
		appKonf.DemoMode = true
	}

	// Validate the config loaded
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !appKonf.IsProdMode {
		k.Print()
	}

	logger, err := config.NewLogger(appKonf)
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := kprom.NewMetrics("terminal")
	b, err := connectBackends(ctx, appKonf, metrics, logger)
	if err != nil {
		logger.Fatal("cannot connect backends", zap.Error(err))
	}
	defer b.close()

	h := buildHandlers(appKonf, b, logger)
	h.Metrics = metrics.Handler()

	server := &http.Server{
		Addr:         appKonf.HTTP.Address,
		Handler:      router.SetupRoutes(h, appKonf.HTTP.RequestTimeout, logger),
		ReadTimeout:  appKonf.HTTP.ReadTimeout,
		WriteTimeout: appKonf.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("terminal api listening", zap.String("address", server.Addr), zap.Bool("demo_mode", appKonf.DemoMode))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
