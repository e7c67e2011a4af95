// Package advisor forwards free-text questions to an OpenAI-compatible chat
// completions endpoint acting as a financial advisor.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrUpstream indicates the language-model provider failed or returned an
// unusable payload.
var ErrUpstream = errors.New("advisor upstream error")

const systemPrompt = "You are a friendly and culturally aware financial advisor for young people in Saudi Arabia. " +
	"You analyze the input given by the user, and recommend them stocks to invest in. " +
	"Prioritize local Saudi companies/stocks, and give a brief explanation on why and why not to invest in " +
	"the companies you recommend. " +
	"Get your stock information from www.saudiexchange.sa mainly, don't use other sources unless necessary. " +
	"Mention how the company is doing, how it operates, what are its growth potentials, competitors, " +
	"risk levels, how it'll help the user achieve their goals, and whatever else is relevant to the user. " +
	"Be supportive, never judgmental. Keep advice short and practical. " +
	"Respond in Arabic if user input is in Arabic, otherwise respond in English. " +
	"Do not under any circumstances use any markdown or formatting tokens. Return plain unstyled text only. " +
	"When the user chooses a company to invest in or asks you for more information on a specific company, " +
	"make sure to list the risk tolerance (considerate/medium/high) and return on investment in percentage."

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
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
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Advise sends the user's message to the model and returns the reply text.
func (c *Client) Advise(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errors.New("message is required")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		msg := ""
		if payload.Error != nil {
			msg = payload.Error.Message
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, msg)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	return payload.Choices[0].Message.Content, nil
}
