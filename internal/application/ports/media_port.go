package ports

import (
	"context"
	"io"
)

// UploadedImage resultado de subir una imagen al proveedor externo.
type UploadedImage struct {
	URL      string
	PublicID string
}

// ImageUploader puerto de salida para almacenar imágenes de productos.
// El almacenamiento en sí queda delegado al proveedor (Cloudinary).
type ImageUploader interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (*UploadedImage, error)
}
