package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/criptobot/gobot/internal/api"
	"github.com/criptobot/gobot/internal/mockbot"
	"github.com/criptobot/gobot/internal/store"
	"github.com/criptobot/gobot/internal/ui"
	"github.com/criptobot/gobot/pkg/config"
	"github.com/criptobot/gobot/pkg/kv"
	"github.com/criptobot/gobot/pkg/logger"
	"github.com/criptobot/gobot/pkg/shutdown"
)

func main() {
	// Load .env (best-effort). If missing, fall back to real env vars.
	_ = godotenv.Load()

	var (
		configPath = flag.String("config", "config.yaml", "config file path")
		embedded   = flag.Bool("embedded-mock", false, "run an in-process mock bot server and connect to it")
	)
	flag.Parse()

	if err := run(*configPath, *embedded); err != nil {
		fmt.Fprintf(os.Stderr, "gobot: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, embedded bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to file only.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "logs/console.log"
	}
	if err := logger.Init(logger.Config{
		Level:      cfg.LogLevel,
		OutputFile: logFile,
		MaxSize:    20,
		MaxBackups: 3,
		MaxAge:     14,
		ConsoleOff: true,
	}); err != nil {
		return err
	}

	serverURL := cfg.ServerURL
	if embedded {
		url, closeMock, err := startEmbeddedMock(cfg.DataDir)
		if err != nil {
			return err
		}
		defer closeMock()
		serverURL = url
	}

	db, err := kv.Open(kv.Options{Path: cfg.DataDir})
	if err != nil {
		return err
	}

	st := store.New(db)
	// Hydrate before the first frame so the UI renders last-known state
	// while the first fetches are in flight.
	st.LoadFromStorage()

	client := api.NewClient(serverURL, cfg.RequestTimeout)

	// Flush the cache before the badger close; the manager runs these
	// in registration order.
	manager := shutdown.NewManager()
	manager.OnShutdown(func(ctx context.Context) {
		st.SaveBotStatus()
	})
	manager.OnShutdown(func(ctx context.Context) {
		if err := db.Close(); err != nil {
			logger.Errorf("close state db: %v", err)
		}
	})

	logger.Infof("console starting, server=%s data=%s", serverURL, cfg.DataDir)

	program := tea.NewProgram(ui.New(st, client, cfg.RefreshInterval), tea.WithAltScreen())
	_, runErr := program.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	manager.Shutdown(ctx)

	return runErr
}

// startEmbeddedMock serves the mock bot on a loopback listener so the
// console can run without a real backend.
func startEmbeddedMock(dataDir string) (url string, closeFn func(), err error) {
	srv, err := mockbot.New(mockbot.Config{DBPath: dataDir + "-mock.db"})
	if err != nil {
		return "", nil, err
	}
	handler := srv.Router()

	ln, err := newLoopbackListener()
	if err != nil {
		_ = srv.Close()
		return "", nil, err
	}
	go serveHTTP(ln, handler)

	return "http://" + ln.Addr().String(), func() { _ = ln.Close(); _ = srv.Close() }, nil
}
