package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardSkipsWithoutWebhook(t *testing.T) {
	conf := newTestConfig(t)
	s := NewRelay(conf)

	assert.False(t, s.Forward(context.Background(), "hello"))
}

func TestForwardDeliversVerbatim(t *testing.T) {
	var got struct {
		Content string `json:"content"`
	}
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &got))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer sink.Close()

	conf := newTestConfig(t)
	conf.WebhookURL = sink.URL
	conf.RelayTimeout = 5 * time.Second
	s := NewRelay(conf)

	assert.True(t, s.Forward(context.Background(), "big shipment inbound"))
	assert.Equal(t, "big shipment inbound", got.Content)
}

func TestForwardReportsRejection(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer sink.Close()

	conf := newTestConfig(t)
	conf.WebhookURL = sink.URL
	conf.RelayTimeout = 5 * time.Second
	s := NewRelay(conf)

	assert.False(t, s.Forward(context.Background(), "dropped on the floor"))
}

func TestForwardReportsUnreachableSink(t *testing.T) {
	conf := newTestConfig(t)
	// a closed server is the cheapest unreachable endpoint
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	conf.WebhookURL = sink.URL
	conf.RelayTimeout = time.Second
	sink.Close()

	s := NewRelay(conf)
	assert.False(t, s.Forward(context.Background(), "nobody home"))
}

func TestUptimeCountsFromStart(t *testing.T) {
	s := NewHealth(newTestConfig(t))

	assert.GreaterOrEqual(t, s.Uptime(), int64(0))
	assert.Less(t, s.Uptime(), int64(60))
}
