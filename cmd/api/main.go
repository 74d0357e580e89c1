package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"volunteercal/internal/app"
	"volunteercal/internal/app/consumers"
	"volunteercal/internal/app/deps"
	"volunteercal/internal/app/services"
	"volunteercal/internal/config"
	dl "volunteercal/internal/core/domain/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	deps, shutdownDeps := deps.InitDeps(cfg)
	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownConsumers, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("emailProvider", deps.Config.EmailProvider),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(
	ctx context.Context,
	server *http.Server,
	deps *deps.Deps,
	shutdownConsumers func(),
	shutdownDeps func(),
) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	// SSE responses never finish on their own.
	server.RegisterOnShutdown(func() { deps.SseServer.Close() })
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "HTTP server shutdown failed.", dl.Entry("err", err))
	}

	shutdownConsumers()
	shutdownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
