package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"rut-calc-api/internal/config"
	"rut-calc-api/internal/logger"
	"rut-calc-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}

	logg, err := logger.New(os.Stdout, cfg.LogFormat, cfg.LogLevel, slog.String("service", "rut-calc-api"))
	if err != nil {
		log.Fatalf("Logger failed: %v", err)
	}

	srv := server.New(cfg, logg)
	go func() {
		if err := srv.ListenAndServe(cfg.Addr()); err != nil {
			logg.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": srv.Shutdown,
		},
	)

	exitCode := <-wait
	logg.Info("exited", "code", exitCode)
	os.Exit(exitCode)
}
