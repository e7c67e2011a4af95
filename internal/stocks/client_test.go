package stocks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/quote", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","name":"Apple Inc","price":"187.44","percent_change":"1.02"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	quote, err := client.GetQuote(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.Equal(t, "Apple Inc", quote.Name)
	assert.Equal(t, "187.44", quote.Price)
	assert.Equal(t, "1.02", quote.Change)
}

func TestClient_GetQuote_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// twelvedata reports errors inside a 200 body
		_, _ = w.Write([]byte(`{"code":404,"message":"symbol not found","status":"error"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.GetQuote(context.Background(), "NOPE")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClient_GetQuote_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key")

	_, err := client.GetQuote(context.Background(), "AAPL")
	require.ErrorIs(t, err, ErrUpstream)
}

func TestClient_GetQuote_EmptySymbol(t *testing.T) {
	client := NewClient("http://localhost", "test-key")

	_, err := client.GetQuote(context.Background(), "  ")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUpstream)
}
