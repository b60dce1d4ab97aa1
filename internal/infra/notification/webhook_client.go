package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const _webhookTimeout = 10 * time.Second

var _ WebhookClient = (*HTTPWebhookClient)(nil)

type HTTPWebhookClient struct {
	url        string
	httpClient *http.Client
}

func NewHTTPWebhookClient(url string) *HTTPWebhookClient {
	return &HTTPWebhookClient{
		url:        url,
		httpClient: &http.Client{Timeout: _webhookTimeout},
	}
}

func (c *HTTPWebhookClient) Forward(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
