package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pokebingo/pokebingo/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// Config holds the webhook settings. An empty WebhookURL disables delivery;
// events are logged and dropped so gameplay keeps working without a channel.
type Config struct {
	WebhookURL string
	Username   string
}

// WebhookNotifier relays gameplay events to a Discord webhook, implementing
// ports.EventNotifier.
type WebhookNotifier struct {
	config Config
	client *http.Client
	logger *logrus.Logger
}

func NewWebhookNotifier(config Config, client *http.Client, logger *logrus.Logger) *WebhookNotifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookNotifier{config: config, client: client, logger: logger}
}

type webhookPayload struct {
	Username string        `json:"username,omitempty"`
	Embeds   []ports.Embed `json:"embeds,omitempty"`
}

// Notify posts the embeds to the configured webhook.
func (n *WebhookNotifier) Notify(ctx context.Context, embeds []ports.Embed) error {
	if n.config.WebhookURL == "" {
		n.logger.Warn("Discord webhook URL not configured; dropping event")
		return nil
	}

	body, err := json.Marshal(webhookPayload{Username: n.config.Username, Embeds: embeds})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("discord webhook failed: %d", resp.StatusCode)
	}

	n.logger.WithFields(logrus.Fields{"embeds": len(embeds)}).Debug("event relayed to Discord")
	return nil
}
