// Package stocks is a thin client for the twelvedata quote API.
package stocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUpstream indicates the quote provider rejected the request or returned
// an unusable payload.
var ErrUpstream = errors.New("stock quote upstream error")

// Quote is the subset of the provider's quote payload exposed to clients.
// The provider returns prices as decimal strings; they are passed through
// untouched to avoid float rounding.
type Quote struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
	Change string `json:"change"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
	}
}

type quotePayload struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	PercentChange string `json:"percent_change"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// GetQuote fetches the current quote for a symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return nil, errors.New("symbol is required")
	}

	endpoint := fmt.Sprintf("%s/quote?symbol=%s&apikey=%s",
		c.baseURL,
		url.QueryEscape(symbol),
		url.QueryEscape(c.apiKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build quote request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var payload quotePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	// the provider reports errors inside a 200 body
	if payload.Status == "error" || payload.Symbol == "" {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, payload.Message)
	}

	return &Quote{
		Symbol: payload.Symbol,
		Name:   payload.Name,
		Price:  payload.Price,
		Change: payload.PercentChange,
	}, nil
}
