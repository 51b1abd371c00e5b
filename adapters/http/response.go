package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape. Errors use the same shape with
// status "error" and no data, emitted by ErrorMiddleware.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Status: "success", Message: message, Data: data})
}
