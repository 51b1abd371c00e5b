package upload

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

const uploadTimeout = 30 * time.Second

// maxListResults caps how many assets a single listing returns.
const maxListResults = 50

type UploadUseCase struct {
	uploader service.Uploader
	events   service.EventPublisher
	logger   logger.Logger
}

func NewUploadUseCase(uploader service.Uploader, events service.EventPublisher, log logger.Logger) *UploadUseCase {
	return &UploadUseCase{uploader: uploader, events: events, logger: log}
}

func (uc *UploadUseCase) Upload(ctx context.Context, file io.Reader) (*service.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	publicID := uuid.New().String()
	result, err := uc.uploader.Upload(ctx, file, publicID)
	if err != nil {
		return nil, apperror.NewUnavailable("Image upload failed", err)
	}

	uc.publish(service.EventTypeCreated, result.PublicID, result.URL)
	return result, nil
}

// Delete removes an asset from storage. The returned bool reports whether the
// asset existed.
func (uc *UploadUseCase) Delete(ctx context.Context, publicID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	existed, err := uc.uploader.Delete(ctx, publicID)
	if err != nil {
		return false, apperror.NewUnavailable("Image deletion failed", err)
	}
	if existed {
		uc.publish(service.EventTypeDeleted, publicID, "")
	}
	return existed, nil
}

func (uc *UploadUseCase) List(ctx context.Context) ([]service.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	assets, err := uc.uploader.List(ctx, maxListResults)
	if err != nil {
		return nil, apperror.NewUnavailable("Listing images failed", err)
	}
	return assets, nil
}

func (uc *UploadUseCase) TransformURL(publicID string, t service.Transform) (string, error) {
	url, err := uc.uploader.TransformURL(publicID, t)
	if err != nil {
		return "", apperror.NewInvalidInput("Invalid transformation parameters", err)
	}
	return url, nil
}

func (uc *UploadUseCase) publish(eventType, publicID, url string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		event := service.MediaEvent{EventType: eventType, PublicID: publicID, URL: url}
		if err := uc.events.PublishMediaEvent(ctx, event); err != nil {
			uc.logger.Warn("Failed to publish media event", zap.String("public_id", publicID), zap.Error(err))
		}
	}()
}
