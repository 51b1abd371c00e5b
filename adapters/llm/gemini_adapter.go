package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

// geminiBaseURL is Google's OpenAI-compatible endpoint for Gemini models.
const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"

type geminiLLMAdapter struct {
	client *openai.Client
	log    logger.Logger
}

func NewGeminiLLMAdapter(cfg config.Config, log logger.Logger) (service.LLMService, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}

	clientConfig := openai.DefaultConfig(cfg.Gemini.APIKey)
	clientConfig.BaseURL = geminiBaseURL

	client := openai.NewClientWithConfig(clientConfig)

	log.Info("Gemini Chat (LLM) Adapter initialized")
	return &geminiLLMAdapter{client: client, log: log}, nil
}

func (a *geminiLLMAdapter) GenerateChatResponse(ctx context.Context, model, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Stream: false,
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gemini returned no chat choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps the raw upstream failure onto the service sentinels right
// here at the boundary, so no business logic ever string-matches messages.
func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := strings.ToLower(apiErr.Message)
		switch {
		case apiErr.HTTPStatusCode == 404,
			strings.Contains(msg, "not found"),
			strings.Contains(msg, "unsupported"):
			return fmt.Errorf("%w: %v", service.ErrModelUnavailable, err)
		case apiErr.HTTPStatusCode == 429:
			return fmt.Errorf("%w: %v", service.ErrQuotaExceeded, err)
		case apiErr.HTTPStatusCode == 401 || apiErr.HTTPStatusCode == 403:
			return fmt.Errorf("%w: %v", service.ErrBadCredentials, err)
		}
	}
	return fmt.Errorf("gemini chat completion request failed: %w", err)
}
