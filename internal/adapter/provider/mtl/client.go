// Package mtl talks to the machine-translation service used for catalog
// fanout. The service takes a bag of named text fields and returns the same
// bag in the target language.
package mtl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client calls the machine-translation HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the given endpoint.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "mtl"),
	}
}

type translateRequest struct {
	Source string            `json:"source"`
	Target string            `json:"target"`
	Texts  map[string]string `json:"texts"`
}

type translateResponse struct {
	Texts map[string]string `json:"texts"`
}

// TranslateBatch translates the named text fields from source to target
// language in one round trip.
func (c *Client) TranslateBatch(ctx context.Context, source, target string, texts map[string]string) (map[string]string, error) {
	payload, err := json.Marshal(translateRequest{Source: source, Target: target, Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("mtl: marshal request: %w", err)
	}

	c.log.DebugContext(ctx, "mtl request",
		slog.String("source", source),
		slog.String("target", target),
		slog.Int("fields", len(texts)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("mtl: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.doWithRetry(ctx, req, payload, target)
	if err != nil {
		c.log.ErrorContext(ctx, "mtl request failed",
			slog.String("target", target), slog.String("error", err.Error()))
		return nil, fmt.Errorf("mtl: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mtl: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("mtl: read body: %w", err)
	}

	var decoded translateResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("mtl: decode json: %w", err)
	}

	return decoded.Texts, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The body is rebuilt for the retry because POST bodies are consumed.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, payload []byte, target string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "mtl retry", slog.String("target", target), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retry := req.Clone(ctx)
	retry.Body = io.NopCloser(bytes.NewReader(payload))
	return c.httpClient.Do(retry)
}
