// Package api is the typed gateway to the remote bot server. Every method
// is one independent request with a fixed timeout: no retries, no caching,
// no deduplication. Callers own user-facing error reporting.
package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/criptobot/gobot/internal/domain"
)

// DefaultTimeout is the fixed per-request timeout.
const DefaultTimeout = 10 * time.Second

// Default page sizes, matching the server's expectations.
const (
	DefaultTradesLimit    = 50
	DefaultLogsLimit      = 100
	DefaultDecisionsLimit = 50
)

// Client talks to the bot server's /api surface.
type Client struct {
	client *resty.Client
}

// NewClient creates a client for host (scheme://host[:port], no /api
// suffix). timeout <= 0 falls back to DefaultTimeout.
func NewClient(host string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(host, "/") + "/api").
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &Client{client: client}
}

// get issues a GET and decodes a 2xx body into out (out may be nil).
func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out interface{}) error {
	r := c.client.R().SetContext(ctx)
	if params != nil {
		r.SetQueryParams(params)
	}
	if out != nil {
		r.SetResult(out)
	}
	resp, err := r.Get(endpoint)
	return checkResponse(resp, err, endpoint)
}

// send issues a bodied request (POST/PUT) and decodes a 2xx body into out.
func (c *Client) send(ctx context.Context, method, endpoint string, body, out interface{}) error {
	r := c.client.R().SetContext(ctx)
	if body != nil {
		r.SetBody(body)
	}
	if out != nil {
		r.SetResult(out)
	}
	var (
		resp *resty.Response
		err  error
	)
	switch method {
	case resty.MethodPost:
		resp, err = r.Post(endpoint)
	case resty.MethodPut:
		resp, err = r.Put(endpoint)
	default:
		return errors.Errorf("unsupported method: %s", method)
	}
	return checkResponse(resp, err, endpoint)
}

func checkResponse(resp *resty.Response, err error, endpoint string) error {
	if err != nil {
		return errors.Wrapf(err, "request %s", endpoint)
	}
	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = resp.Status()
		}
		return errors.Errorf("request %s: %d %s", endpoint, resp.StatusCode(), body)
	}
	return nil
}

// GetBotStatus returns the current bot status snapshot.
func (c *Client) GetBotStatus(ctx context.Context) (*domain.BotStatus, error) {
	var status domain.BotStatus
	if err := c.get(ctx, "/bot/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// StartBot asks the bot to begin trading. Fire and forget: success or
// failure only, callers refetch status afterwards.
func (c *Client) StartBot(ctx context.Context) error {
	return c.send(ctx, resty.MethodPost, "/bot/start", nil, nil)
}

// StopBot halts trading.
func (c *Client) StopBot(ctx context.Context) error {
	return c.send(ctx, resty.MethodPost, "/bot/stop", nil, nil)
}

// PauseBot pauses trading.
func (c *Client) PauseBot(ctx context.Context) error {
	return c.send(ctx, resty.MethodPost, "/bot/pause", nil, nil)
}

// GetTrades lists recent trades, most recent first. limit <= 0 uses
// DefaultTradesLimit.
func (c *Client) GetTrades(ctx context.Context, limit int) ([]domain.Trade, error) {
	if limit <= 0 {
		limit = DefaultTradesLimit
	}
	var trades []domain.Trade
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.get(ctx, "/trades", params, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// GetTrade looks up one trade by id.
func (c *Client) GetTrade(ctx context.Context, tradeID string) (*domain.Trade, error) {
	var trade domain.Trade
	endpoint := "/trades/" + url.PathEscape(tradeID)
	if err := c.get(ctx, endpoint, nil, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// CloseTrade requests the server close the position. The resulting trade
// state comes from a refetch, not from this call.
func (c *Client) CloseTrade(ctx context.Context, tradeID string) error {
	endpoint := fmt.Sprintf("/trades/%s/close", url.PathEscape(tradeID))
	return c.send(ctx, resty.MethodPost, endpoint, nil, nil)
}

// GetMarketData returns a single-symbol quote.
func (c *Client) GetMarketData(ctx context.Context, symbol string) (*domain.MarketData, error) {
	var md domain.MarketData
	endpoint := "/market/" + url.PathEscape(symbol)
	if err := c.get(ctx, endpoint, nil, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// GetMarketDataMultiple returns quotes for a batch of symbols.
func (c *Client) GetMarketDataMultiple(ctx context.Context, symbols []string) ([]domain.MarketData, error) {
	var mds []domain.MarketData
	body := map[string][]string{"symbols": symbols}
	if err := c.send(ctx, resty.MethodPost, "/market/multiple", body, &mds); err != nil {
		return nil, err
	}
	return mds, nil
}

// GetSettings returns the server's current bot configuration.
func (c *Client) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var settings domain.Settings
	if err := c.get(ctx, "/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings submits a partial update and returns the full resulting
// settings record. Callers replace their cached entity with the result.
func (c *Client) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (*domain.Settings, error) {
	var settings domain.Settings
	if err := c.send(ctx, resty.MethodPut, "/settings", patch, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetPerformanceMetrics returns the analytics snapshot.
func (c *Client) GetPerformanceMetrics(ctx context.Context) (*domain.PerformanceMetrics, error) {
	var metrics domain.PerformanceMetrics
	if err := c.get(ctx, "/performance", nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// GetLogs returns recent server-side log entries. limit <= 0 uses
// DefaultLogsLimit.
func (c *Client) GetLogs(ctx context.Context, limit int) ([]domain.BotLog, error) {
	if limit <= 0 {
		limit = DefaultLogsLimit
	}
	var logs []domain.BotLog
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.get(ctx, "/logs", params, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// GetAIDecisions returns recent AI decisions. limit <= 0 uses
// DefaultDecisionsLimit.
func (c *Client) GetAIDecisions(ctx context.Context, limit int) ([]domain.AIDecision, error) {
	if limit <= 0 {
		limit = DefaultDecisionsLimit
	}
	var decisions []domain.AIDecision
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if err := c.get(ctx, "/ai/decisions", params, &decisions); err != nil {
		return nil, err
	}
	return decisions, nil
}

// HealthCheck probes the server. All failures, transport included, are
// deliberately swallowed into false.
func (c *Client) HealthCheck(ctx context.Context) bool {
	resp, err := c.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return false
	}
	return resp.StatusCode() == 200
}
