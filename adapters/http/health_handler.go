package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	dbPool    *pgxpool.Pool
	env       string
	startedAt time.Time
}

func NewHealthHandler(dbPool *pgxpool.Pool, env string) *HealthHandler {
	return &HealthHandler{dbPool: dbPool, env: env, startedAt: time.Now()}
}

func (h *HealthHandler) Check(c *gin.Context) {
	overall := "ok"
	dbStatus := "ok"
	status := http.StatusOK
	if err := h.dbPool.Ping(c.Request.Context()); err != nil {
		overall = "degraded"
		dbStatus = "unreachable"
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":      overall,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.env,
		"db":          dbStatus,
		"uptime":      time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
