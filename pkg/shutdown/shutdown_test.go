package shutdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/internal/store"
	"github.com/criptobot/gobot/pkg/kv"
)

func TestShutdownRunsCallbacksInOrder(t *testing.T) {
	m := NewManager()

	var order []string
	m.OnShutdown(func(ctx context.Context) {
		time.Sleep(30 * time.Millisecond)
		order = append(order, "first")
	})
	m.OnShutdown(func(ctx context.Context) {
		order = append(order, "second")
	})
	m.OnShutdown(func(ctx context.Context) {
		order = append(order, "third")
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Shutdown(ctx)

	require.Equal(t, []string{"first", "second", "third"}, order)
}

func TestShutdownTimeoutSkipsPending(t *testing.T) {
	m := NewManager()

	var ranSecond bool
	m.OnShutdown(func(ctx context.Context) {
		time.Sleep(200 * time.Millisecond)
	})
	m.OnShutdown(func(ctx context.Context) {
		ranSecond = true
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	m.Shutdown(ctx)
	require.Less(t, time.Since(start), 150*time.Millisecond)

	// Let the in-flight callback drain before checking.
	time.Sleep(250 * time.Millisecond)
	require.False(t, ranSecond)
}

func TestShutdownNoCallbacks(t *testing.T) {
	m := NewManager()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Shutdown(ctx) // must not block or panic
}

// The console registers the state flush before the badger close. A slow
// flush must still land before the store goes away, otherwise the
// next launch hydrates stale or missing state.
func TestShutdownFlushCompletesBeforeClose(t *testing.T) {
	db, err := kv.Open(kv.Options{InMemory: true})
	require.NoError(t, err)

	st := store.New(db)
	st.SetBotStatus(domain.BotStatus{ID: "bot-1", Name: "CriptoBot", IsActive: true})

	m := NewManager()
	m.OnShutdown(func(ctx context.Context) {
		time.Sleep(50 * time.Millisecond)
		st.SaveBotStatus()
	})
	m.OnShutdown(func(ctx context.Context) {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Shutdown(ctx)

	require.Empty(t, st.Err())
}
