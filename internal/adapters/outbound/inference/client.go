// Package inference calls a hosted text-generation model and falls back to
// templates when the model cannot answer.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antekerwin/jeki/internal/adapters/outbound/metrics"
)

const maxNewTokens = 280

var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrRateLimit     = errors.New("rate limit exceeded")
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyResponse = errors.New("empty response")
)

type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client posts prompts to a text-generation endpoint that accepts
// {"inputs", "parameters"} and answers [{"generated_text"}].
type Client struct {
	url     string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func New(cfg Config, logger *zap.Logger, m *metrics.Metrics) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:     cfg.URL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
		metrics: m,
	}
}

type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	ReturnFullText bool    `json:"return_full_text"`
}

type generationResult struct {
	GeneratedText string `json:"generated_text"`
}

// Complete returns the model's continuation of prompt.
func (c *Client) Complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, prompt, temperature)
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.RecordInference(status, time.Since(start))
	return text, err
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	body, err := json.Marshal(generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens:   maxNewTokens,
			Temperature:    temperature,
			ReturnFullText: false,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrAuthFailed
	case http.StatusTooManyRequests:
		return "", ErrRateLimit
	default:
		c.logger.Error("inference request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(string(respBody), 512)),
		)
		return "", fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode)
	}

	var results []generationResult
	if err := json.Unmarshal(respBody, &results); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(results) == 0 || strings.TrimSpace(results[0].GeneratedText) == "" {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(results[0].GeneratedText), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
