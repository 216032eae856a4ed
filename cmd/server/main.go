package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/veldtdb/fileiod/internal/config"
	"github.com/veldtdb/fileiod/internal/logging"
	"github.com/veldtdb/fileiod/internal/server"
)

func main() {
	port := flag.String("port", "", "Server port (overrides PORT)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *port != "" {
		cfg.Server.Port = *port
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
	}
	defer log.Sync()

	srv := server.New(cfg, log)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run(cfg.Server.Host + ":" + cfg.Server.Port)
	}()

	select {
	case <-sigChan:
		log.Info("shutting down")
	case err := <-errChan:
		log.Fatal("server error", zap.Error(err))
	}
}
