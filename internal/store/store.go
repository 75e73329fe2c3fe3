// Package store holds the client's last-known view of the bot: status,
// trade list, and settings, mirrored to a local key-value database so the
// UI can render immediately on the next start.
package store

import (
	"encoding/json"
	"sync"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/pkg/kv"
	"github.com/criptobot/gobot/pkg/logger"
)

// Storage keys. Each entity lives under its own key and is written and
// hydrated independently of the others.
const (
	KeyBotStatus = "botStatus"
	KeyTrades    = "trades"
	KeySettings  = "settings"
)

const (
	errLoadMsg = "failed to load data from storage"
	errSaveMsg = "failed to save data"
)

// Store is the shared state cache. One instance per running app, passed
// explicitly to its consumers. Entities are replaced as whole units, never
// merged field by field, so a concurrent stale write can at worst leave an
// older snapshot, never a torn one.
type Store struct {
	mu sync.RWMutex
	kv *kv.Store

	botStatus *domain.BotStatus
	trades    []domain.Trade
	settings  *domain.Settings
	loading   bool
	lastErr   string

	subMu sync.Mutex
	subs  []func()
}

// New creates a cache backed by db. db may be nil in tests that never
// touch persistence.
func New(db *kv.Store) *Store {
	return &Store{kv: db}
}

// OnChange registers fn to run after every mutation. Callbacks run on the
// mutating goroutine and must not call back into the store.
func (s *Store) OnChange(fn func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := s.subs
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// SetBotStatus replaces the cached status unconditionally.
func (s *Store) SetBotStatus(status domain.BotStatus) {
	s.mu.Lock()
	s.botStatus = &status
	s.mu.Unlock()
	s.notify()
}

// AddTrade prepends trade to the cached list, most-recent-first. No
// deduplication by id, and no persistence side effect.
func (s *Store) AddTrade(trade domain.Trade) {
	s.mu.Lock()
	s.trades = append([]domain.Trade{trade}, s.trades...)
	s.mu.Unlock()
	s.notify()
}

// SetTrades replaces the whole cached trade list, as a refetch does.
func (s *Store) SetTrades(trades []domain.Trade) {
	s.mu.Lock()
	s.trades = trades
	s.mu.Unlock()
	s.notify()
}

// SetSettings replaces the cached settings unconditionally.
func (s *Store) SetSettings(settings domain.Settings) {
	s.mu.Lock()
	s.settings = &settings
	s.mu.Unlock()
	s.notify()
}

// ClearError resets the shared error message.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
	s.notify()
}

// BotStatus returns the cached status, or nil if none was ever set.
func (s *Store) BotStatus() *domain.BotStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.botStatus
}

// Trades returns the cached trade list, most recent first.
func (s *Store) Trades() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trades
}

// Settings returns the cached settings, or nil.
func (s *Store) Settings() *domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// IsLoading reports whether LoadFromStorage is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last error message, empty when none.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

// LoadFromStorage hydrates the cache from the key-value database. Each key
// hydrates independently: a key that is absent or fails to parse leaves the
// corresponding field at its previous value and does not stop the others.
// Failures collapse into the shared error message; nothing is returned or
// retried. Call once at startup before relying on cached data.
func (s *Store) LoadFromStorage() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	s.notify()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	var status domain.BotStatus
	if s.loadKey(KeyBotStatus, &status) {
		s.mu.Lock()
		s.botStatus = &status
		s.mu.Unlock()
	}

	var trades []domain.Trade
	if s.loadKey(KeyTrades, &trades) {
		s.mu.Lock()
		s.trades = trades
		s.mu.Unlock()
	}

	var settings domain.Settings
	if s.loadKey(KeySettings, &settings) {
		s.mu.Lock()
		s.settings = &settings
		s.mu.Unlock()
	}
}

// loadKey reads one key and reports whether out was populated. An absent
// key is not a failure; a read or parse failure sets the shared error.
func (s *Store) loadKey(key string, out interface{}) bool {
	if s.kv == nil {
		return false
	}
	raw, found, err := s.kv.Get(key)
	if err != nil {
		logger.Warnf("store: read %s: %v", key, err)
		s.setError(errLoadMsg)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warnf("store: parse %s: %v", key, err)
		s.setError(errLoadMsg)
		return false
	}
	return true
}

// SaveBotStatus writes the current status (if present), trade list (if
// non-empty), and settings (if present) under their keys. Each write is
// independent; a failed key does not roll back the others. Failures
// collapse into the shared error message and the call completes silently.
func (s *Store) SaveBotStatus() {
	s.mu.RLock()
	status := s.botStatus
	trades := s.trades
	settings := s.settings
	s.mu.RUnlock()

	if status != nil {
		s.saveKey(KeyBotStatus, status)
	}
	if len(trades) > 0 {
		s.saveKey(KeyTrades, trades)
	}
	if settings != nil {
		s.saveKey(KeySettings, settings)
	}
}

func (s *Store) saveKey(key string, v interface{}) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Warnf("store: marshal %s: %v", key, err)
		s.setError(errSaveMsg)
		return
	}
	if err := s.kv.Set(key, raw); err != nil {
		logger.Warnf("store: write %s: %v", key, err)
		s.setError(errSaveMsg)
	}
}
