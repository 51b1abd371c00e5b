package service

import (
	"context"
	"errors"
)

// Upstream failures are classified here, at the boundary where they are first
// received. The chat use case only ever inspects these sentinels.
var (
	// ErrModelUnavailable: the model identifier is unrecognized, unsupported
	// or gone. The caller may try the next candidate.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrQuotaExceeded: upstream quota or rate limit hit. Do not retry.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrBadCredentials: the configured API key was rejected. Do not retry.
	ErrBadCredentials = errors.New("bad upstream credentials")
)

type LLMService interface {
	GenerateChatResponse(ctx context.Context, model, prompt string) (string, error)
}
