package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"yearcompass/internal/config"
)

// HTTPGateway speaks the OpenAI-compatible chat-completions wire format.
type HTTPGateway struct {
	url    string
	model  string
	apiKey string
	client *http.Client
}

func NewHTTPGateway(cfg config.AIConfig) *HTTPGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &HTTPGateway{
		url:    cfg.URL,
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) Generate(ctx context.Context, turns []Turn, systemPrompt string, opts Options) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("%w: api key not configured", ErrUpstream)
	}

	messages := make([]Turn, 0, len(turns)+1)
	if systemPrompt != "" {
		messages = append(messages, Turn{Role: RoleSystem, Content: systemPrompt})
	}
	messages = append(messages, turns...)

	payload := map[string]interface{}{
		"model":       g.model,
		"messages":    messages,
		"temperature": opts.Temperature,
		"max_tokens":  opts.MaxTokens,
		"top_p":       opts.TopP,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	res, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, res.StatusCode, string(b))
	}

	var respStruct struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(res.Body).Decode(&respStruct); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(respStruct.Choices) == 0 || respStruct.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	return respStruct.Choices[0].Message.Content, nil
}
