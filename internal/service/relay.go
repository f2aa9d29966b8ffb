package service

import (
	"bytes"
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"quakerfm.dev/market-next/internal/app/appconfig"
	"quakerfm.dev/market-next/internal/pkg/mkterr"
	"quakerfm.dev/market-next/internal/pkg/observability"
)

type Relay struct {
	conf *appconfig.Config

	client *http.Client
}

func NewRelay(conf *appconfig.Config) *Relay {
	return &Relay{
		conf: conf,
		client: &http.Client{
			Timeout: conf.RelayTimeout,
		},
	}
}

type relayPayload struct {
	Content string `json:"content"`
}

// Forward delivers message verbatim to the configured notification sink.
// Delivery failures are logged and reported only through the return value:
// by the time Forward runs, the caller's request has already been accepted.
func (s *Relay) Forward(ctx context.Context, message string) bool {
	if s.conf.WebhookURL == "" {
		log.Debug().Str("evt.name", "relay.skip").Msg("no webhook configured, not forwarding")
		observability.RelayDeliveries.WithLabelValues("skipped").Inc()
		return false
	}

	body, err := json.Marshal(relayPayload{Content: message})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal relay payload")
		observability.RelayDeliveries.WithLabelValues("failed").Inc()
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.conf.WebhookURL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build relay request")
		observability.RelayDeliveries.WithLabelValues("failed").Inc()
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Warn().
			Str("evt.name", "relay.deliver").
			Err(mkterr.ErrRelayFailure.Msg("notification sink unreachable: %s", err)).
			Msg("failed to deliver relayed message")
		observability.RelayDeliveries.WithLabelValues("failed").Inc()
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn().
			Str("evt.name", "relay.deliver").
			Int("status", resp.StatusCode).
			Err(mkterr.ErrRelayFailure.Msg("notification sink rejected the relayed message with status %d", resp.StatusCode)).
			Msg("failed to deliver relayed message")
		observability.RelayDeliveries.WithLabelValues("failed").Inc()
		return false
	}

	observability.RelayDeliveries.WithLabelValues("forwarded").Inc()
	return true
}
