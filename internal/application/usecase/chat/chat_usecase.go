package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

// upstreamTimeout bounds every generative-model call.
const upstreamTimeout = 30 * time.Second

// maxHistoryTurns caps how much prior conversation goes into the prompt.
const maxHistoryTurns = 5

// defaultModelCandidates is the descending-preference fallback list. An
// operator-configured override, when present, is tried before all of these.
var defaultModelCandidates = []string{
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-pro",
	"gemini-pro",
}

type ChatUseCase struct {
	llm        service.LLMService
	candidates []string
	logger     logger.Logger
}

func NewChatUseCase(llm service.LLMService, modelOverride string, log logger.Logger) *ChatUseCase {
	candidates := make([]string, 0, len(defaultModelCandidates)+1)
	if modelOverride != "" {
		candidates = append(candidates, modelOverride)
	}
	candidates = append(candidates, defaultModelCandidates...)

	return &ChatUseCase{llm: llm, candidates: candidates, logger: log}
}

type Turn struct {
	Role    string
	Content string
}

type QueryInput struct {
	Message string
	History []Turn
}

type QueryOutput struct {
	Response string
	Model    string
}

func (uc *ChatUseCase) Query(ctx context.Context, in QueryInput) (*QueryOutput, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, apperror.NewInvalidInput("Message is required", nil)
	}

	// The full prompt is assembled before the first upstream call.
	prompt := uc.buildPrompt(message, in.History)

	var lastErr error
	for _, model := range uc.candidates {
		callCtx, cancel := context.WithTimeout(ctx, upstreamTimeout)
		response, err := uc.llm.GenerateChatResponse(callCtx, model, prompt)
		cancel()

		if err == nil {
			return &QueryOutput{Response: response, Model: model}, nil
		}
		lastErr = err

		switch {
		case errors.Is(err, service.ErrModelUnavailable):
			// Only an unavailable model justifies moving down the list.
			uc.logger.Warn("Model unavailable, trying next candidate", zap.String("model", model), zap.Error(err))
			continue
		case errors.Is(err, service.ErrQuotaExceeded):
			return nil, apperror.NewRateLimited("The assistant is receiving too many requests, please try again later", err)
		case errors.Is(err, service.ErrBadCredentials):
			return nil, apperror.NewUnavailable("The assistant is temporarily unavailable", err)
		default:
			return nil, apperror.NewInternal("chat completion failed", err)
		}
	}

	return nil, apperror.NewUnavailable("The assistant is temporarily unavailable", lastErr)
}

func (uc *ChatUseCase) buildPrompt(message string, history []Turn) string {
	var b strings.Builder
	b.WriteString(ownerKnowledge)
	b.WriteString("\n\n")

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) > 0 {
		b.WriteString("--- Recent conversation ---\n")
		for _, t := range history {
			speaker := "User"
			if t.Role == "assistant" {
				speaker = "Assistant"
			}
			b.WriteString(fmt.Sprintf("%s: %s\n", speaker, t.Content))
		}
		b.WriteString("\n")
	}

	b.WriteString("--- Question ---\n")
	b.WriteString(message)
	b.WriteString("\n\n--- Answer ---\n")
	b.WriteString("Answer the question above as the site owner's assistant, using only the facts provided:")

	return b.String()
}
