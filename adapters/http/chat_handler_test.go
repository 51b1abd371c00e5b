package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	chatUC "github.com/khoahotran/portfolio-api/internal/application/usecase/chat"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type recordingLLM struct {
	mu    sync.Mutex
	calls int
}

func (f *recordingLLM) GenerateChatResponse(_ context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return "stub answer", nil
}

func newChatRouter(llm *recordingLLM) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	handler := NewChatHandler(chatUC.NewChatUseCase(llm, "", log), log)

	router := gin.New()
	router.Use(ErrorMiddleware(log, false))
	router.POST("/api/chatbot/query", handler.Query)
	router.GET("/api/chatbot/history", handler.History)
	router.POST("/api/chatbot/feedback", handler.Feedback)
	return router
}

func postQuery(router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/query", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestChatQuery_EmptyMessageNeverReachesUpstream(t *testing.T) {
	llm := &recordingLLM{}
	router := newChatRouter(llm)

	rr := postQuery(router, gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Message is required", body["message"])
	assert.Zero(t, llm.calls)
}

func TestChatQuery_WhitespaceMessageRejected(t *testing.T) {
	llm := &recordingLLM{}
	router := newChatRouter(llm)

	rr := postQuery(router, gin.H{"message": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, llm.calls)
}

func TestChatQuery_Success(t *testing.T) {
	llm := &recordingLLM{}
	router := newChatRouter(llm)

	rr := postQuery(router, gin.H{
		"message": "what does Khoa do?",
		"history": []gin.H{{"role": "user", "content": "hi"}},
	})
	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Status string            `json:"status"`
		Data   ChatQueryResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "stub answer", body.Data.Response)
	assert.NotEmpty(t, body.Data.Model)
	assert.Equal(t, 1, llm.calls)
}

func TestChatQuery_BadHistoryRole(t *testing.T) {
	llm := &recordingLLM{}
	router := newChatRouter(llm)

	rr := postQuery(router, gin.H{
		"message": "hello",
		"history": []gin.H{{"role": "system", "content": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, llm.calls)
}

func TestChatHistory_AlwaysEmpty(t *testing.T) {
	router := newChatRouter(&recordingLLM{})

	req := httptest.NewRequest(http.MethodGet, "/api/chatbot/history", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Status string            `json:"status"`
		Data   []ChatTurnRequest `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Empty(t, body.Data)
}

func TestChatFeedback_AcknowledgedNotStored(t *testing.T) {
	llm := &recordingLLM{}
	router := newChatRouter(llm)

	body, _ := json.Marshal(gin.H{"message": "great answer", "rating": 5})
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Zero(t, llm.calls)
}

func TestChatFeedback_RatingOutOfRange(t *testing.T) {
	router := newChatRouter(&recordingLLM{})

	body, _ := json.Marshal(gin.H{"message": "meh", "rating": 9})
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/feedback", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
