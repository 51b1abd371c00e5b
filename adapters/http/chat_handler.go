package http

import (
	"github.com/gin-gonic/gin"
	chatUC "github.com/khoahotran/portfolio-api/internal/application/usecase/chat"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
)

type ChatHandler struct {
	chatUseCase *chatUC.ChatUseCase
	logger      logger.Logger
}

func NewChatHandler(uc *chatUC.ChatUseCase, log logger.Logger) *ChatHandler {
	return &ChatHandler{chatUseCase: uc, logger: log}
}

func (h *ChatHandler) Query(c *gin.Context) {
	var req ChatQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, chatLabels), err))
		return
	}

	history := make([]chatUC.Turn, len(req.History))
	for i, t := range req.History {
		history[i] = chatUC.Turn{Role: t.Role, Content: t.Content}
	}

	out, err := h.chatUseCase.Query(c.Request.Context(), chatUC.QueryInput{
		Message: req.Message,
		History: history,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Query answered", ChatQueryResponse{Response: out.Response, Model: out.Model})
}

// History is part of the contract but conversations are never persisted, so
// there is nothing to return. Acknowledged, not stored.
func (h *ChatHandler) History(c *gin.Context) {
	respondOK(c, "Chat history is not stored", []ChatTurnRequest{})
}

// Feedback accepts and acknowledges the payload without storing it.
func (h *ChatHandler) Feedback(c *gin.Context) {
	var req ChatFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, chatLabels), err))
		return
	}
	respondOK(c, "Feedback received", nil)
}
