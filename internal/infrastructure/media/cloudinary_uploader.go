// Package media sube imágenes de producto a Cloudinary.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/pkg/config"
)

var _ ports.ImageUploader = (*CloudinaryUploader)(nil)

type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader implementa ports.ImageUploader.
type CloudinaryUploader struct {
	api uploadAPI
}

// NewCloudinaryUploader construye el uploader. (nil, nil) si faltan credenciales.
func NewCloudinaryUploader(cfg config.CloudinaryConfig) (*CloudinaryUploader, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: %w", err)
	}
	return &CloudinaryUploader{api: &cld.Upload}, nil
}

// Upload sube r como imagen dentro de folder; el public id es el nombre de archivo sin extensión.
func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader, filename, folder string) (*ports.UploadedImage, error) {
	publicID := strings.TrimSuffix(filename, path.Ext(filename))
	res, err := u.api.Upload(ctx, r, uploader.UploadParams{
		Folder:       folder,
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary: upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return &ports.UploadedImage{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
