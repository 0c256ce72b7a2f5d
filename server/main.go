package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	greeter "github.com/achyuta116/big-data-projects/greeter/lib"
)

func main() {
	cfg, err := greeter.LoadConfig()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := greeter.NewLogger(os.Stderr, cfg.LogLevel)

	events := greeter.NewPublisher(cfg.Brokers, cfg.EventsTopic, logger)
	defer events.Close()

	d := newDispatcher(greeter.NewState(), events, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", greeter.Port),
		Handler: d.routes(),
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.ListenAndServe()
	}()

	logger.Info("greeter listening", "port", greeter.Port, "endpoints", greeter.Endpoints, "events", len(cfg.Brokers) > 0)
	logger.Info(fmt.Sprintf(`try: curl -X POST http://localhost:%d/greeter/greet -H 'Content-Type: application/json' -d '"World"'`, greeter.Port))

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			events.Close()
			os.Exit(1)
		}
	case <-signalChan:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("shutdown", "err", err)
		}
	}

	logger.Info("exited gracefully")
}
