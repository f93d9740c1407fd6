package centrifugo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/s21platform/messaging-service/internal/config"
	"github.com/s21platform/messaging-service/internal/model"
)

const (
	broadcastMethod = "broadcast"
)

var broadcastTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "messaging_centrifugo_broadcast_total",
	Help: "Centrifugo broadcast calls by event type and outcome.",
}, []string{"event", "status"})

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Centrifuge.BaseURL,
		apiKey:  cfg.Centrifuge.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Centrifuge.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Broadcast relays event to every channel in a single API call.
func (c *Client) Broadcast(ctx context.Context, channels []string, event model.MessageEvent) error {
	err := c.call(ctx, model.CentrifugoEvent{
		Method: broadcastMethod,
		Params: model.CentrifugoBroadcastParams{
			Channels: channels,
			Data:     event,
		},
	})
	if err != nil {
		broadcastTotal.WithLabelValues(event.Type, "error").Inc()
		return err
	}

	broadcastTotal.WithLabelValues(event.Type, "ok").Inc()
	return nil
}

func (c *Client) call(ctx context.Context, payload model.CentrifugoEvent) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var response map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if errorData, exists := response["error"]; exists && errorData != nil {
		return fmt.Errorf("centrifugo error: %v", errorData)
	}

	return nil
}
