// Package main runs the local development record store: an in-memory
// json-server-compatible HTTP API. Handy when working against the CLI
// without the hosted store.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akazakov/jobtrack/internal/devstore"
	"github.com/akazakov/jobtrack/internal/logging"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	flag.Parse()

	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	store := devstore.NewStore()
	svc := devstore.NewService(store, logger)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      svc.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("devstore listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
