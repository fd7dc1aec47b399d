package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/srikanthsurna/swipe-project/internal/llm"
)

// Client implements llm.Invoker on top of an explicitly constructed genai
// client. Nothing here is package-level state; callers own the lifecycle.
type Client struct {
	cfg    Config
	genai  *genai.Client
	logger *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: API key is required")
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{cfg: cfg, genai: gc, logger: logger}, nil
}

func (c *Client) Close() error {
	return c.genai.Close()
}

// Invoke sends the (content part, prompt part) pair and returns the raw
// response text. No retry; a failure is terminal for the caller's file.
func (c *Client) Invoke(ctx context.Context, content llm.NormalizedContent, prompt string) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	inline := content.Inline != nil
	c.logger.Info("gemini.invoke.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"inline", inline,
		"prompt_len", len(prompt),
	)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	model := c.genai.GenerativeModel(c.cfg.Model)
	model.SetTemperature(c.cfg.Temperature)

	parts := make([]genai.Part, 0, 2)
	if inline {
		data, err := base64.StdEncoding.DecodeString(content.Inline.Data)
		if err != nil {
			return "", fmt.Errorf("decode inline payload: %w", err)
		}
		parts = append(parts, genai.Blob{MIMEType: content.Inline.MIMEType, Data: data})
	} else {
		parts = append(parts, genai.Text(content.Text))
	}
	parts = append(parts, genai.Text(prompt))

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		c.logger.Error("gemini.invoke.error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	text := responseText(resp)
	if text == "" {
		c.logger.Error("gemini.invoke.empty_response",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", errors.New("empty response from model")
	}

	c.logger.Info("gemini.invoke.ok",
		"req_id", rid,
		"bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}
