package shutdown

import (
	"context"
	"sync"

	"github.com/criptobot/gobot/pkg/logger"
)

// Handler is one shutdown callback.
type Handler func(ctx context.Context)

// Manager collects shutdown callbacks and runs them in registration
// order on exit. Callers register dependents after their dependencies,
// so a state flush registered before the store close always completes
// before the store goes away.
type Manager struct {
	callbacks []Handler
	mu        sync.Mutex
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		callbacks: make([]Handler, 0),
	}
}

// OnShutdown registers a callback. Callbacks run in the order they
// were registered.
func (m *Manager) OnShutdown(handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, handler)
}

// Shutdown runs the callbacks one at a time and blocks until they
// finish or ctx expires. ctx should carry a timeout so a stuck
// callback cannot hang the exit; callbacks still pending when the
// timeout fires are skipped.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	callbacks := m.callbacks
	m.mu.Unlock()

	if len(callbacks) == 0 {
		return
	}

	logger.Infof("shutting down, %d callbacks", len(callbacks))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for _, cb := range callbacks {
			if ctx.Err() != nil {
				return
			}
			cb(ctx)
		}
	}()

	select {
	case <-done:
		logger.Info("shutdown callbacks completed")
	case <-ctx.Done():
		logger.Warnf("shutdown timed out: %v", ctx.Err())
	}
}
