package chat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeLLM struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
	prompts   []string
}

func (f *fakeLLM) GenerateChatResponse(_ context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	f.prompts = append(f.prompts, prompt)
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	if resp, ok := f.responses[model]; ok {
		return resp, nil
	}
	return "", fmt.Errorf("%w: %s", service.ErrModelUnavailable, model)
}

func newChatForTest(llm service.LLMService, override string) *ChatUseCase {
	return NewChatUseCase(llm, override, logger.NewNop())
}

func TestQuery_FallsThroughUnavailableModels(t *testing.T) {
	llm := &fakeLLM{
		errs: map[string]error{
			"gemini-1.5-flash":    fmt.Errorf("%w: retired", service.ErrModelUnavailable),
			"gemini-1.5-flash-8b": fmt.Errorf("%w: retired", service.ErrModelUnavailable),
		},
		responses: map[string]string{"gemini-1.5-pro": "answer from pro"},
	}
	uc := newChatForTest(llm, "")

	out, err := uc.Query(context.Background(), QueryInput{Message: "what do you do?"})
	assert.NoError(t, err)
	assert.Equal(t, "answer from pro", out.Response)
	assert.Equal(t, "gemini-1.5-pro", out.Model)
	assert.Equal(t, []string{"gemini-1.5-flash", "gemini-1.5-flash-8b", "gemini-1.5-pro"}, llm.calls)
}

func TestQuery_OverrideModelTriedFirst(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{"custom-model": "custom answer"}}
	uc := newChatForTest(llm, "custom-model")

	out, err := uc.Query(context.Background(), QueryInput{Message: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, "custom answer", out.Response)
	assert.Equal(t, []string{"custom-model"}, llm.calls)
}

func TestQuery_QuotaErrorAbortsImmediately(t *testing.T) {
	llm := &fakeLLM{
		errs: map[string]error{
			"gemini-1.5-flash": fmt.Errorf("%w: 429", service.ErrQuotaExceeded),
		},
	}
	uc := newChatForTest(llm, "")

	_, err := uc.Query(context.Background(), QueryInput{Message: "hi"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, apperror.ToHTTPStatus(err))
	// No further candidates were tried.
	assert.Equal(t, []string{"gemini-1.5-flash"}, llm.calls)
}

func TestQuery_BadCredentialsAbortsImmediately(t *testing.T) {
	llm := &fakeLLM{
		errs: map[string]error{
			"gemini-1.5-flash": fmt.Errorf("%w: 401", service.ErrBadCredentials),
		},
	}
	uc := newChatForTest(llm, "")

	_, err := uc.Query(context.Background(), QueryInput{Message: "hi"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTPStatus(err))
	assert.Len(t, llm.calls, 1)
}

func TestQuery_AllCandidatesExhausted(t *testing.T) {
	llm := &fakeLLM{} // every model reports unavailable
	uc := newChatForTest(llm, "")

	_, err := uc.Query(context.Background(), QueryInput{Message: "hi"})
	assert.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperror.ToHTTPStatus(err))
	assert.Len(t, llm.calls, len(defaultModelCandidates))
}

func TestQuery_BlankMessageNeverCallsUpstream(t *testing.T) {
	llm := &fakeLLM{}
	uc := newChatForTest(llm, "")

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := uc.Query(context.Background(), QueryInput{Message: msg})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTPStatus(err))
	}
	assert.Empty(t, llm.calls)
}

func TestBuildPrompt_ContainsKnowledgeHistoryAndQuestion(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{"gemini-1.5-flash": "ok"}}
	uc := newChatForTest(llm, "")

	history := []Turn{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
	}
	_, err := uc.Query(context.Background(), QueryInput{Message: "second question", History: history})
	assert.NoError(t, err)

	prompt := llm.prompts[0]
	assert.Contains(t, prompt, "Khoa")
	assert.Contains(t, prompt, "User: first question")
	assert.Contains(t, prompt, "Assistant: first answer")
	assert.Contains(t, prompt, "second question")
	// Knowledge precedes history, history precedes the question.
	assert.Less(t, strings.Index(prompt, "Khoa"), strings.Index(prompt, "first question"))
	assert.Less(t, strings.Index(prompt, "first answer"), strings.Index(prompt, "second question"))
}

func TestBuildPrompt_HistoryCapped(t *testing.T) {
	llm := &fakeLLM{responses: map[string]string{"gemini-1.5-flash": "ok"}}
	uc := newChatForTest(llm, "")

	var history []Turn
	for i := 0; i < 12; i++ {
		history = append(history, Turn{Role: "user", Content: fmt.Sprintf("turn-%d", i)})
	}
	_, err := uc.Query(context.Background(), QueryInput{Message: "latest", History: history})
	assert.NoError(t, err)

	prompt := llm.prompts[0]
	assert.NotContains(t, prompt, "turn-6")
	assert.Contains(t, prompt, "turn-7")
	assert.Contains(t, prompt, "turn-11")
}
