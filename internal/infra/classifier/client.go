package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Result is the classification the external model assigns to a selling reason.
type Result string

const (
	ResultPass            Result = "PASS"
	ResultWholesaler      Result = "WHOLESALER"
	ResultTireKicker      Result = "TIRE_KICKER"
	ResultDescriptionOnly Result = "DESCRIPTION_ONLY"
)

func (r Result) IsValid() bool {
	switch r {
	case ResultPass, ResultWholesaler, ResultTireKicker, ResultDescriptionOnly:
		return true
	default:
		return false
	}
}

type Client interface {
	Classify(ctx context.Context, reason string) (Result, error)
}

var _ Client = (*APIClient)(nil)

const _classifyTimeout = 15 * time.Second

type APIClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewAPIClient(endpoint, apiKey string) *APIClient {
	return &APIClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: _classifyTimeout},
	}
}

func (c *APIClient) Classify(ctx context.Context, reason string) (Result, error) {
	payload, err := json.Marshal(map[string]string{"reason": reason})
	if err != nil {
		return "", fmt.Errorf("creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.apiKey)
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("classifier request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier api status %d: %s", resp.StatusCode, string(body))
	}

	var response struct {
		Result Result `json:"result"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}

	if !response.Result.IsValid() {
		return "", fmt.Errorf("unexpected classification %q", response.Result)
	}

	return response.Result, nil
}
