package media_storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// incomingTransformation is the canonical recipe applied on upload: fill-crop
// to 4:3 with automatic quality and format negotiation.
const incomingTransformation = "c_fill,w_800,h_600,q_auto,f_auto"

type cloudinaryAdapter struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.Uploader, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}

	log.Info("connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld, folder: cfg.Cloudinary.Folder}, nil
}

func (a *cloudinaryAdapter) Upload(ctx context.Context, file io.Reader, publicID string) (*service.UploadResult, error) {
	uploadParams := uploader.UploadParams{
		PublicID:       publicID,
		Folder:         a.folder,
		Transformation: incomingTransformation,
	}
	result, err := a.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return nil, fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return &service.UploadResult{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
		Width:    result.Width,
		Height:   result.Height,
		Format:   result.Format,
		Bytes:    result.Bytes,
	}, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, publicID string) (bool, error) {
	result, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	// Destroy reports "not found" in the result body, not as an error.
	return result.Result == "ok", nil
}

func (a *cloudinaryAdapter) List(ctx context.Context, max int) ([]service.Asset, error) {
	result, err := a.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:  "image",
		Prefix:     a.folder + "/",
		MaxResults: max,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cloudinary assets: %w", err)
	}

	assets := make([]service.Asset, 0, len(result.Assets))
	for _, asset := range result.Assets {
		assets = append(assets, service.Asset{
			PublicID:  asset.PublicID,
			URL:       asset.SecureURL,
			Format:    asset.Format,
			Width:     asset.Width,
			Height:    asset.Height,
			Bytes:     asset.Bytes,
			CreatedAt: asset.CreatedAt,
		})
	}
	return assets, nil
}

func (a *cloudinaryAdapter) TransformURL(publicID string, t service.Transform) (string, error) {
	image, err := a.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("cannot build cloudinary image: %w", err)
	}

	crop := t.Crop
	if crop == "" {
		crop = "fill"
	}
	quality := t.Quality
	if quality == "" {
		quality = "auto"
	}
	image.Transformation = fmt.Sprintf("c_%s,w_%d,h_%d,q_%s,f_auto", crop, t.Width, t.Height, quality)

	url, err := image.String()
	if err != nil {
		return "", fmt.Errorf("cannot build cloudinary url: %w", err)
	}
	return url, nil
}
