package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/angelgmx/reservaIA/internal/pkg/config"
	"github.com/angelgmx/reservaIA/internal/pkg/errs"
)

// Gateway errors the usecase layer maps to user-facing messages.
var (
	ErrRateLimited     = errs.New("chat gateway rate limit exceeded")
	ErrPaymentRequired = errs.New("chat gateway credits exhausted")
	ErrGatewayFailure  = errs.New("chat gateway request failed")
	ErrEmptyCompletion = errs.New("chat gateway returned no choices")
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg config.ChatbotConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to encode completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Mark(err, ErrGatewayFailure)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrPaymentRequired
	default:
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", errs.Mark(errs.New("unexpected gateway status "+resp.Status+": "+string(payload)), ErrGatewayFailure)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", errs.Wrap(err, "failed to decode completion response")
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return completion.Choices[0].Message.Content, nil
}
