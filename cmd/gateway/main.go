package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/eo-misc/payment-gateway/gateway"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found")
	}

	app := gateway.NewApp(logger, gateway.ConfigFromEnv())
	if err := app.Start(); err != nil {
		logger.Error("starting app", "err", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	app.Shutdown()
}
