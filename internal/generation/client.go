// Package generation adapts an OpenAI-style chat-completions endpoint
// behind a single-method client interface.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"lifenumber/reporthub/internal/config"
	"lifenumber/reporthub/internal/numerology"
)

// ErrGenerationFailed wraps every failure mode of the external service:
// transport errors, non-2xx statuses, and malformed responses. Callers
// only ever branch on this sentinel; the cause rides along for logs.
var ErrGenerationFailed = errors.New("report generation failed")

const systemRole = "You are a seasoned life-number reader with 20 years of experience who has helped countless people understand their life mission and potential. Your readings are warm, professional and insightful."

// Client produces report text for a fully built generation request.
type Client interface {
	Generate(ctx context.Context, req *numerology.GenerationRequest) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type openAIClient struct {
	cfg        config.GenerationConfig
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a chat-completions client from configuration. No
// retry is performed here; retry policy belongs to the caller.
func NewClient(cfg config.GenerationConfig, logger *zap.Logger) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	return &openAIClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

func (c *openAIClient) Generate(ctx context.Context, genReq *numerology.GenerationRequest) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("%w: API key not configured", ErrGenerationFailed)
	}

	// Apply the configured timeout when the caller set no deadline.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && c.cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.RequestTimeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemRole},
			{Role: "user", Content: genReq.Prompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	c.logger.Debug("calling generation service",
		zap.String("model", c.cfg.Model),
		zap.Int("life_number", genReq.LifeNumber),
		zap.Int("age", genReq.Age),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("generation service returned error status",
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrGenerationFailed, err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrGenerationFailed, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: response has no content", ErrGenerationFailed)
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ Client = (*openAIClient)(nil)
