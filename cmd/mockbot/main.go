package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/criptobot/gobot/internal/mockbot"
)

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	getenv := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}

	var (
		listenAddr = flag.String("listen", getenv("GOBOT_MOCK_LISTEN", ":5000"), "HTTP listen address")
		dbPath     = flag.String("db", getenv("GOBOT_MOCK_DB", "data/mockbot.db"), "SQLite db file path")
		name       = flag.String("name", getenv("GOBOT_MOCK_NAME", "CriptoBot"), "bot display name")
	)
	flag.Parse()

	srv, err := mockbot.New(mockbot.Config{
		DBPath: *dbPath,
		Name:   *name,
	})
	if err != nil {
		log.Fatalf("init mockbot failed: %v", err)
	}
	defer srv.Close()

	httpSrv := &http.Server{
		Addr:              *listenAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("mockbot listening on %s", *listenAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http server error: %v", err)
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	<-stopCh

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctx)

	fmt.Println("mockbot stopped")
}
