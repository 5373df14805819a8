package llm

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

	"github.com/acoyfellow/doclint/internal/ports"
)

// The base URL for the OpenRouter API.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

const defaultRequestTimeout = 2 * time.Minute

// OpenRouterClient implements ports.Completer against the OpenRouter
// chat-completions API. One request per Complete call, no retries.
type OpenRouterClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

// ClientOption defines a functional option for configuring the client.
type ClientOption func(*OpenRouterClient)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *OpenRouterClient) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *OpenRouterClient) {
		c.httpClient = httpClient
	}
}

// NewOpenRouterClient creates a new OpenRouter client.
func NewOpenRouterClient(apiKey, model string, logger ports.Logger, opts ...ClientOption) (*OpenRouterClient, error) {
	if apiKey == "" {
		return nil, errors.New("OpenRouter API key is required")
	}
	if model == "" {
		return nil, errors.New("OpenRouter model name is required")
	}

	client := &OpenRouterClient{
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		baseURL:    openRouterBaseURL,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// chatRequest represents the request structure for the OpenRouter API.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse represents the response structure from the OpenRouter API.
type chatResponse struct {
	Choices []choice   `json:"choices"`
	Error   *respError `json:"error,omitempty"`
}

type choice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type respError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Complete sends a single chat-completion request and returns the text of
// the first choice.
func (c *OpenRouterClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.logger.Debug("Sending completion request", "model", c.model)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Completion request failed",
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		return "", fmt.Errorf("API request failed with status code %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("API error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("API response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
