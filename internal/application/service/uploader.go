package service

import (
	"context"
	"io"
	"time"
)

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Format   string `json:"format"`
	Bytes    int    `json:"bytes"`
}

type Asset struct {
	PublicID  string    `json:"public_id"`
	URL       string    `json:"url"`
	Format    string    `json:"format"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Bytes     int       `json:"bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// Transform is a derived-rendering recipe applied by the media host.
type Transform struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Crop    string `json:"crop"`
	Quality string `json:"quality"`
}

type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (*UploadResult, error)
	// Delete reports whether the asset actually existed, so callers can tell
	// "deleted" from "was already absent".
	Delete(ctx context.Context, publicID string) (bool, error)
	List(ctx context.Context, max int) ([]Asset, error)
	TransformURL(publicID string, t Transform) (string, error)
}
