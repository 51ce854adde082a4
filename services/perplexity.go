package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"skillforge/config"
	"skillforge/logger"
	"skillforge/models"
)

const (
	perplexityBaseURL = "https://api.perplexity.ai"
	defaultModel      = "llama-3.1-sonar-small"

	defaultSystemPrompt = "You are an AI assistant specialized in technology education and career development."
)

// ChatOptions tunes a single generation call. Zero values fall back to
// the client defaults.
type ChatOptions struct {
	SystemPrompt string
	History      []models.ConversationTurn
	MaxTokens    int
	Temperature  float32
	TopP         float32
}

// TextGenerator is the seam between the generators and the provider.
// Tests substitute a scripted implementation.
type TextGenerator interface {
	Chat(ctx context.Context, prompt string, opts ChatOptions) (string, error)
	Model() string
}

// PerplexityClient talks to Perplexity's OpenAI-compatible chat
// completions endpoint with retry and error classification.
type PerplexityClient struct {
	client      *openai.Client
	model       string
	temperature float32
	timeout     time.Duration
	backoff     BackoffPolicy
	log         *logger.Logger
}

func NewPerplexityClient(cfg config.PerplexityConfig, backoff BackoffPolicy, log *logger.Logger) (*PerplexityClient, error) {
	if cfg.ApiKey == "" {
		return nil, fmt.Errorf("perplexity api key is not configured")
	}
	oc := openai.DefaultConfig(cfg.ApiKey)
	oc.BaseURL = perplexityBaseURL

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if cfg.MaxRetries > 0 {
		backoff.MaxAttempts = cfg.MaxRetries
	}
	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}
	return &PerplexityClient{
		client:      openai.NewClientWithConfig(oc),
		model:       model,
		temperature: temperature,
		timeout:     timeout,
		backoff:     backoff,
		log:         log.With("component", "perplexity"),
	}, nil
}

func (c *PerplexityClient) Model() string { return c.model }

// Chat sends one chat completion request, retrying transient failures
// per the backoff policy. Auth and bad-request failures return
// immediately; exhausting all attempts returns ErrProviderUnavailable.
func (c *PerplexityClient) Chat(ctx context.Context, prompt string, opts ChatOptions) (string, error) {
	req := c.buildRequest(prompt, opts)

	var lastErr error
	for attempt := 0; attempt < c.backoff.MaxAttempts; attempt++ {
		if attempt > 0 {
			// rate limits back off exponentially; other transient
			// failures retry after the base delay
			delay := c.backoff.BaseDelay
			if errors.Is(lastErr, errRateLimited) {
				delay = c.backoff.Delay(attempt - 1)
			}
			if err := c.backoff.sleep(ctx, delay); err != nil {
				return "", err
			}
		}
		content, err := c.send(ctx, req)
		if err == nil {
			return content, nil
		}
		if isFatal(err) {
			return "", err
		}
		lastErr = err
		c.log.Warn("generation attempt failed",
			"attempt", attempt+1,
			"max_attempts", c.backoff.MaxAttempts,
			"error", err)
	}
	return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
}

func (c *PerplexityClient) buildRequest(prompt string, opts ChatOptions) openai.ChatCompletionRequest {
	system := opts.SystemPrompt
	if system == "" {
		system = defaultSystemPrompt
	}
	messages := make([]openai.ChatCompletionMessage, 0, len(opts.History)*2+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range opts.History {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.Question},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Answer},
		)
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	temperature := opts.Temperature
	if temperature == 0 {
		temperature = c.temperature
	}
	topP := opts.TopP
	if topP == 0 {
		topP = 0.9
	}
	return openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		Stream:      false,
	}
}

func (c *PerplexityClient) send(ctx context.Context, req openai.ChatCompletionRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, req)
	if err != nil {
		return "", classifyProviderError(err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from provider")
	}
	return resp.Choices[0].Message.Content, nil
}

func classifyProviderError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case 401, 403:
			return fmt.Errorf("%w: %s", ErrAuth, apiErr.Message)
		case 400:
			return fmt.Errorf("%w: %s", ErrBadRequest, apiErr.Message)
		case 429:
			return fmt.Errorf("%w: %s", errRateLimited, apiErr.Message)
		}
		return fmt.Errorf("provider error (status %d): %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	return err
}
