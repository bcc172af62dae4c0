package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tanvirdev/officebook/internal/domain/models"
)

// Notifier delivers daily summaries to an external receiver.
type Notifier interface {
	SendDailySummary(ctx context.Context, summary models.DailySummary) error
}

// WebhookClient is a resty-backed Notifier posting JSON to a fixed URL.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewWebhookClient builds a webhook notifier for the given URL.
func NewWebhookClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        url,
	}
}

// SendDailySummary posts the summary and fails on any non-2xx response.
func (c *WebhookClient) SendDailySummary(ctx context.Context, summary models.DailySummary) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(summary).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send daily summary: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("daily summary webhook returned status %d", resp.StatusCode())
	}
	return nil
}
