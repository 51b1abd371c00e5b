package http

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	uploadUC "github.com/khoahotran/portfolio-api/internal/application/usecase/upload"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/validation"
	"go.uber.org/zap"
)

const (
	maxUploadBytes = 5 << 20 // 5 MiB
	// Slack on top of the file cap for multipart framing and other fields.
	maxMultipartOverhead = 10 << 10
)

type UploadHandler struct {
	uploadUseCase *uploadUC.UploadUseCase
	logger        logger.Logger
}

func NewUploadHandler(uc *uploadUC.UploadUseCase, log logger.Logger) *UploadHandler {
	return &UploadHandler{uploadUseCase: uc, logger: log}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	// Oversized bodies are cut off at ingress, before multipart parsing
	// spools anything to disk.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+maxMultipartOverhead)

	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.Error(apperror.NewInvalidInput("Image must be 5MB or smaller", err))
			return
		}
		c.Error(apperror.NewInvalidInput("An image file is required", err))
		return
	}
	files := form.File["image"]
	if len(files) == 0 {
		c.Error(apperror.NewInvalidInput("An image file is required", nil))
		return
	}
	if len(files) > 1 {
		c.Error(apperror.NewInvalidInput("Only one image may be uploaded per request", nil))
		return
	}
	fileHeader := files[0]

	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		c.Error(apperror.NewInvalidInput("Only image files are accepted", nil))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.Error(apperror.NewInvalidInput("Image must be 5MB or smaller", nil))
		return
	}

	// Staged through a local temp file so a slow upstream never holds the
	// request body open. The name avoids collisions between concurrent
	// uploads of the same filename.
	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("upload-%d-%s", time.Now().UnixNano(), uuid.New().String()))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		c.Error(apperror.NewInternal("failed to stage uploaded file", err))
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			h.logger.Warn("Failed to remove staged upload", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	f, err := os.Open(tmpPath)
	if err != nil {
		c.Error(apperror.NewInternal("failed to read staged upload", err))
		return
	}
	defer f.Close()

	result, err := h.uploadUseCase.Upload(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		return
	}
	respondCreated(c, "Image uploaded", result)
}

func (h *UploadHandler) Delete(c *gin.Context) {
	// The route uses a wildcard so foldered public IDs ("portfolio/<uuid>")
	// resolve; the wildcard value keeps its leading slash.
	publicID := strings.TrimPrefix(c.Param("publicID"), "/")
	if publicID == "" {
		c.Error(apperror.NewInvalidInput("Public ID is required", nil))
		return
	}

	existed, err := h.uploadUseCase.Delete(c.Request.Context(), publicID)
	if err != nil {
		c.Error(err)
		return
	}
	if !existed {
		c.Error(apperror.NewNotFound("Image", publicID))
		return
	}
	respondOK(c, "Image deleted", nil)
}

func (h *UploadHandler) List(c *gin.Context) {
	assets, err := h.uploadUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Images retrieved", assets)
}

func (h *UploadHandler) Transform(c *gin.Context) {
	var req TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput(validation.Translate(err, transformLabels), err))
		return
	}

	url, err := h.uploadUseCase.TransformURL(req.PublicID, service.Transform{
		Width:   req.Width,
		Height:  req.Height,
		Crop:    req.Crop,
		Quality: req.Quality,
	})
	if err != nil {
		c.Error(err)
		return
	}
	respondOK(c, "Transformation URL generated", gin.H{"url": url})
}
