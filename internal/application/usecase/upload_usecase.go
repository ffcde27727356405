package usecase

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/ports"
	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

const (
	// MaxImageSize tamaño máximo aceptado para imágenes de producto (5 MB).
	MaxImageSize = 5 << 20
	imageFolder  = "pureglow-products"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadUseCase sube imágenes de productos al proveedor externo.
type UploadUseCase struct {
	uploader ports.ImageUploader // nil = no configurado
	log      *logger.Logger
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(uploader ports.ImageUploader, log *logger.Logger) *UploadUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UploadUseCase{uploader: uploader, log: log.Component("upload")}
}

// UploadImage valida tipo y tamaño y sube la imagen con un nombre único.
func (uc *UploadUseCase) UploadImage(ctx context.Context, r io.Reader, filename, contentType string, size int64) (*dto.UploadResponse, error) {
	if uc.uploader == nil {
		return nil, domain.WithDetail(domain.ErrNotConfigured, "Cloudinary not configured")
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if !allowedImageTypes[ct] {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "Invalid file type. Allowed: JPEG, PNG, WebP, GIF")
	}
	if size > MaxImageSize {
		return nil, domain.WithDetail(domain.ErrInvalidInput, "File too large. Max size: 5MB")
	}
	name := uuid.NewString() + strings.ToLower(path.Ext(filename))
	img, err := uc.uploader.Upload(ctx, io.LimitReader(r, MaxImageSize+1), name, imageFolder)
	if err != nil {
		uc.log.Error().Err(err).Str("filename", filename).Msg("falló la subida de la imagen")
		return nil, domain.WithDetail(domain.ErrUpstream, "Upload failed: %v", err)
	}
	return &dto.UploadResponse{URL: img.URL, PublicID: img.PublicID}, nil
}
