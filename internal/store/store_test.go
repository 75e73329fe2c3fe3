package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/criptobot/gobot/internal/domain"
	"github.com/criptobot/gobot/pkg/kv"
)

func newTestKV(t *testing.T) *kv.Store {
	t.Helper()
	db, err := kv.Open(kv.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sampleStatus(name string) domain.BotStatus {
	return domain.BotStatus{
		ID:       "bot-1",
		Name:     name,
		IsActive: true,
		Status:   domain.BotStateRunning,
		Balance:  10250.75,
		Equity:   10311.40,
		WinRate:  61.5,
	}
}

func sampleTrade(id string) domain.Trade {
	return domain.Trade{
		ID:         id,
		Symbol:     "BTCUSDT",
		Type:       domain.TradeTypeBuy,
		EntryPrice: 64000,
		Quantity:   0.05,
		EntryTime:  1700000000000,
		Status:     domain.TradeStatusOpen,
		Confidence: 80,
		AIModel:    "prophet-v2.3",
	}
}

func sampleSettings() domain.Settings {
	return domain.Settings{
		APIKey:              "key",
		APISecret:           "secret",
		BrokerType:          domain.BrokerBinance,
		RiskPercentage:      2.5,
		MaxDrawdown:         10,
		DailyLossLimit:      500,
		PositionSize:        0.1,
		EnableNotifications: true,
		UpdateInterval:      5000,
	}
}

func TestAddTradePrependsNewestFirst(t *testing.T) {
	s := New(nil)
	s.AddTrade(sampleTrade("t1"))
	s.AddTrade(sampleTrade("t2"))

	trades := s.Trades()
	require.Len(t, trades, 2)
	require.Equal(t, "t2", trades[0].ID)
	require.Equal(t, "t1", trades[1].ID)
}

func TestAddTradeKeepsDuplicates(t *testing.T) {
	s := New(nil)
	s.AddTrade(sampleTrade("dup"))
	s.AddTrade(sampleTrade("dup"))
	require.Len(t, s.Trades(), 2)
}

func TestSetBotStatusReplacesWholesale(t *testing.T) {
	s := New(nil)
	first := sampleStatus("first")
	first.LastTrade = func() *domain.Trade { tr := sampleTrade("t1"); return &tr }()
	s.SetBotStatus(first)

	// The replacement has no LastTrade; nothing from the old value may
	// survive the replacement.
	s.SetBotStatus(sampleStatus("second"))
	got := s.BotStatus()
	require.Equal(t, "second", got.Name)
	require.Nil(t, got.LastTrade)
}

func TestLoadFromStorageAllKeysAbsent(t *testing.T) {
	s := New(newTestKV(t))
	prior := sampleStatus("prior")
	s.SetBotStatus(prior)

	s.LoadFromStorage()

	require.Equal(t, "", s.Err())
	require.False(t, s.IsLoading())
	require.Equal(t, prior.Name, s.BotStatus().Name)
	require.Nil(t, s.Settings())
}

func TestLoadFromStorageHydratesAllKeys(t *testing.T) {
	db := newTestKV(t)

	src := New(db)
	src.SetBotStatus(sampleStatus("persisted"))
	src.AddTrade(sampleTrade("t1"))
	src.SetSettings(sampleSettings())
	src.SaveBotStatus()
	require.Equal(t, "", src.Err())

	dst := New(db)
	dst.LoadFromStorage()

	require.Equal(t, "", dst.Err())
	require.Equal(t, "persisted", dst.BotStatus().Name)
	require.Len(t, dst.Trades(), 1)
	require.Equal(t, sampleSettings(), *dst.Settings())
}

func TestLoadFromStorageCorruptKeyHydratesOthers(t *testing.T) {
	db := newTestKV(t)
	require.NoError(t, db.Set(KeyBotStatus, []byte("{not json")))

	raw, err := json.Marshal(sampleSettings())
	require.NoError(t, err)
	require.NoError(t, db.Set(KeySettings, raw))

	s := New(db)
	prior := sampleStatus("prior")
	s.SetBotStatus(prior)
	s.LoadFromStorage()

	// The corrupt key leaves its field untouched and flags the error; the
	// valid key still hydrates.
	require.Equal(t, "prior", s.BotStatus().Name)
	require.NotNil(t, s.Settings())
	require.Equal(t, sampleSettings(), *s.Settings())
	require.NotEqual(t, "", s.Err())

	s.ClearError()
	require.Equal(t, "", s.Err())
}

func TestSaveBotStatusSkipsEmptyTrades(t *testing.T) {
	db := newTestKV(t)
	s := New(db)
	s.SetBotStatus(sampleStatus("only-status"))
	s.SaveBotStatus()

	_, found, err := db.Get(KeyTrades)
	require.NoError(t, err)
	require.False(t, found)

	_, found, err = db.Get(KeyBotStatus)
	require.NoError(t, err)
	require.True(t, found)
}

func TestSettingsRoundTrip(t *testing.T) {
	db := newTestKV(t)
	want := sampleSettings()

	src := New(db)
	src.SetSettings(want)
	src.SaveBotStatus()

	dst := New(db)
	dst.LoadFromStorage()
	require.Equal(t, want, *dst.Settings())
}

func TestSaveOverwritesPreviousValue(t *testing.T) {
	db := newTestKV(t)
	s := New(db)

	s.SetBotStatus(sampleStatus("v1"))
	s.SaveBotStatus()
	s.SetBotStatus(sampleStatus("v2"))
	s.SaveBotStatus()

	fresh := New(db)
	fresh.LoadFromStorage()
	require.Equal(t, "v2", fresh.BotStatus().Name)
}

func TestOnChangeFiresOnMutation(t *testing.T) {
	s := New(nil)
	var calls int
	s.OnChange(func() { calls++ })

	s.SetBotStatus(sampleStatus("x"))
	s.AddTrade(sampleTrade("t1"))
	s.ClearError()
	require.Equal(t, 3, calls)
}

func TestLoadingFlagClearedOnReturn(t *testing.T) {
	s := New(newTestKV(t))
	var sawLoading bool
	s.OnChange(func() {
		if s.IsLoading() {
			sawLoading = true
		}
	})
	s.LoadFromStorage()
	require.True(t, sawLoading)
	require.False(t, s.IsLoading())
}
