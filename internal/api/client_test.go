package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/criptobot/gobot/internal/domain"
)

func TestGetBotStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/bot/status", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.BotStatus{
			ID: "bot-1", Name: "CriptoBot", IsActive: true, Status: domain.BotStateRunning,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	status, err := c.GetBotStatus(context.Background())
	require.NoError(t, err)
	require.True(t, status.IsActive)
	require.Equal(t, domain.BotStateRunning, status.Status)
}

func TestGetTradesSendsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/trades", r.URL.Path)
		require.Equal(t, "25", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.Trade{{ID: "t1"}, {ID: "t2"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	trades, err := c.GetTrades(context.Background(), 25)
	require.NoError(t, err)
	require.Len(t, trades, 2)
}

func TestGetTradesDefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "50", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode([]domain.Trade{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.GetTrades(context.Background(), 0)
	require.NoError(t, err)
}

func TestUpdateSettingsSendsOnlySetFields(t *testing.T) {
	full := domain.Settings{
		APIKey: "k", BrokerType: domain.BrokerBinance,
		RiskPercentage: 3.5, UpdateInterval: 5000,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/settings", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// A partial patch carries exactly the fields the caller set.
		require.Equal(t, map[string]interface{}{"riskPercentage": 3.5}, body)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(full)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	risk := 3.5
	got, err := c.UpdateSettings(context.Background(), domain.SettingsPatch{RiskPercentage: &risk})
	require.NoError(t, err)
	// The response is the complete record, not an echo of the patch.
	require.Equal(t, full, *got)
}

func TestCloseTradeEscapesID(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.EscapedPath()
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	require.NoError(t, c.CloseTrade(context.Background(), "id/with slash"))
	require.Equal(t, "/api/trades/id%2Fwith%20slash/close", path)
}

func TestMarketDataMultiple(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/market/multiple", r.URL.Path)
		var body struct {
			Symbols []string `json:"symbols"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, []string{"BTCUSDT", "ETHUSDT"}, body.Symbols)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]domain.MarketData{{Symbol: "BTCUSDT"}, {Symbol: "ETHUSDT"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	mds, err := c.GetMarketDataMultiple(context.Background(), []string{"BTCUSDT", "ETHUSDT"})
	require.NoError(t, err)
	require.Len(t, mds, 2)
}

func TestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	_, err := c.GetBotStatus(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestStartBotPostsWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bot/start", r.URL.Path)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 0)
	require.NoError(t, c.StartBot(context.Background()))
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	c := NewClient(srv.URL, 0)
	require.True(t, c.HealthCheck(context.Background()))

	// Non-200 means unhealthy.
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer bad.Close()
	require.False(t, NewClient(bad.URL, 0).HealthCheck(context.Background()))

	// Transport failure is swallowed into false, not an error.
	srv.Close()
	require.False(t, c.HealthCheck(context.Background()))
}

func TestRequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.GetBotStatus(context.Background())
	require.Error(t, err)
}
