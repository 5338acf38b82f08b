// Package ai calls the Gemini generateContent API to score a resume
// against a job description.
package ai

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"resumewise-backend/internal/config"
	"resumewise-backend/internal/models"
)

//go:embed prompt.txt
var promptTemplate string

// ErrExhausted is returned when the provider keeps failing after the
// configured number of attempts.
var ErrExhausted = errors.New("AI provider exhausted retries")

// Client calls the Gemini API with bounded exponential-backoff retries
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Gemini client
func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Screen submits the resume and job description and returns the parsed
// screening result. Only 503 responses and network errors are retried;
// any other provider failure is surfaced immediately.
func (c *Client) Screen(ctx context.Context, resumeText, jobDescriptionText string) (*models.ScreeningResult, error) {
	prompt := fmt.Sprintf(`%s
JOB DESCRIPTION:
---
%s
---

RESUME TEXT:
---
%s
---`, strings.TrimSpace(promptTemplate), jobDescriptionText, resumeText)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"role":  "user",
				"parts": []map[string]interface{}{{"text": prompt}},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
			"responseSchema":   screeningSchema,
			"temperature":      0.1,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	attempt := 0
	operation := func() (*models.ScreeningResult, error) {
		attempt++
		c.logger.Info("calling Gemini API",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", c.cfg.MaxRetries))

		result, err := c.call(ctx, jsonData)
		if err != nil {
			var retryable *retryableError
			if errors.As(err, &retryable) {
				c.logger.Warn("Gemini API attempt failed, will retry",
					zap.Int("attempt", attempt),
					zap.Error(retryable.err))
				return nil, retryable
			}
			return nil, backoff.Permanent(err)
		}
		return result, nil
	}

	// No randomization: delays double deterministically from the initial
	// backoff (1s, 2s, 4s, ...) up to the attempt limit.
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.cfg.InitialBackoff
	expBackoff.RandomizationFactor = 0
	expBackoff.Multiplier = 2
	expBackoff.MaxElapsedTime = 0

	result, err := backoff.RetryWithData(operation,
		backoff.WithContext(backoff.WithMaxRetries(expBackoff, uint64(c.cfg.MaxRetries-1)), ctx))
	if err != nil {
		// Exhausting the attempt budget surfaces the last transient error;
		// permanent failures pass through untouched.
		var retryable *retryableError
		if errors.As(err, &retryable) {
			return nil, fmt.Errorf("%w: %s", ErrExhausted, retryable.err)
		}
		return nil, err
	}

	return result, nil
}

// retryableError marks failures worth another attempt (503s, timeouts)
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func (c *Client) call(ctx context.Context, body []byte) (*models.ScreeningResult, error) {
	url := fmt.Sprintf("%s?key=%s", c.cfg.APIURL, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network errors and client timeouts are transient
		return nil, &retryableError{err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, &retryableError{err: fmt.Errorf("API request failed with status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	return parseScreeningResponse(respBody)
}

// parseScreeningResponse walks the generateContent envelope down to the
// generated text and decodes it as a ScreeningResult.
func parseScreeningResponse(body []byte) (*models.ScreeningResult, error) {
	var apiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	if len(apiResponse.Candidates) == 0 || len(apiResponse.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("LLM response format was unexpected")
	}

	text := cleanJSONResponse(apiResponse.Candidates[0].Content.Parts[0].Text)

	var result models.ScreeningResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse screening JSON: %w", err)
	}

	return &result, nil
}

// cleanJSONResponse strips markdown code fences some models wrap around
// JSON output despite the structured-output request.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}
