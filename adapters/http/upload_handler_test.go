package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	uploadUC "github.com/khoahotran/portfolio-api/internal/application/usecase/upload"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type stubUploader struct {
	failUpload bool
	uploaded   int
	deleted    string
}

func (u *stubUploader) Upload(_ context.Context, file io.Reader, publicID string) (*service.UploadResult, error) {
	io.Copy(io.Discard, file)
	if u.failUpload {
		return nil, errors.New("upstream rejected the upload")
	}
	u.uploaded++
	return &service.UploadResult{URL: "https://cdn.example.com/" + publicID, PublicID: publicID}, nil
}

func (u *stubUploader) Delete(_ context.Context, publicID string) (bool, error) {
	u.deleted = publicID
	return publicID == "portfolio/exists", nil
}

func (u *stubUploader) List(context.Context, int) ([]service.Asset, error) {
	return []service.Asset{}, nil
}

func (u *stubUploader) TransformURL(publicID string, _ service.Transform) (string, error) {
	return "https://cdn.example.com/t/" + publicID, nil
}

type nopEvents struct{}

func (nopEvents) PublishContentEvent(context.Context, service.ContentEvent) error { return nil }
func (nopEvents) PublishMediaEvent(context.Context, service.MediaEvent) error     { return nil }

func newUploadRouter(uploader *stubUploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	handler := NewUploadHandler(uploadUC.NewUploadUseCase(uploader, nopEvents{}, log), log)

	router := gin.New()
	router.Use(ErrorMiddleware(log, false))
	router.POST("/api/upload/image", handler.Upload)
	router.DELETE("/api/upload/image/*publicID", handler.Delete)
	return router
}

func buildImageForm(t *testing.T, fieldName, contentType string, payload []byte, copies int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for i := 0; i < copies; i++ {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+fieldName+`"; filename="photo.png"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		assert.NoError(t, err)
		part.Write(payload)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func postImage(router *gin.Engine, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func stagedUploads(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(os.TempDir())
	assert.NoError(t, err)
	var found []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "upload-") {
			found = append(found, filepath.Join(os.TempDir(), e.Name()))
		}
	}
	return found
}

func TestUpload_Success(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)
	before := stagedUploads(t)

	body, ct := buildImageForm(t, "image", "image/png", []byte("fake png bytes"), 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, 1, uploader.uploaded)
	assert.Equal(t, before, stagedUploads(t), "staged file must be removed after a successful upload")
}

func TestUpload_UpstreamFailureStillCleansUp(t *testing.T) {
	uploader := &stubUploader{failUpload: true}
	router := newUploadRouter(uploader)
	before := stagedUploads(t)

	body, ct := buildImageForm(t, "image", "image/png", []byte("fake png bytes"), 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Equal(t, before, stagedUploads(t), "staged file must be removed even when the upstream fails")
}

func TestUpload_RejectsNonImage(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	body, ct := buildImageForm(t, "image", "application/pdf", []byte("%PDF-1.7"), 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, uploader.uploaded)
}

func TestUpload_RejectsMultipleFiles(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	body, ct := buildImageForm(t, "image", "image/png", []byte("fake"), 2)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, uploader.uploaded)
}

func TestUpload_RejectsMissingFile(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	body, ct := buildImageForm(t, "attachment", "image/png", []byte("fake"), 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, uploader.uploaded)
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	big := make([]byte, maxUploadBytes+1)
	body, ct := buildImageForm(t, "image", "image/png", big, 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, uploader.uploaded)
}

func TestDelete_MissingAssetIsNotFound(t *testing.T) {
	router := newUploadRouter(&stubUploader{})

	req := httptest.NewRequest(http.MethodDelete, "/api/upload/image/no-such-asset", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDelete_FolderedAsset(t *testing.T) {
	// Cloudinary public IDs include the folder prefix, so the path segment
	// carries a slash and must still reach the handler intact.
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)

	req := httptest.NewRequest(http.MethodDelete, "/api/upload/image/portfolio/exists", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "portfolio/exists", uploader.deleted)
}

func TestUpload_OversizedBodyCutAtIngress(t *testing.T) {
	uploader := &stubUploader{}
	router := newUploadRouter(uploader)
	before := stagedUploads(t)

	big := make([]byte, maxUploadBytes+maxMultipartOverhead+1)
	body, ct := buildImageForm(t, "image", "image/png", big, 1)
	rr := postImage(router, body, ct)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, uploader.uploaded)
	assert.Equal(t, before, stagedUploads(t), "nothing may be staged for a body over the ingress limit")
}
