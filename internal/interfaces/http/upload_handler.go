package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// UploadHandler subida de imágenes de producto (admin).
type UploadHandler struct {
	uc  *usecase.UploadUseCase
	log *logger.Logger
}

func NewUploadHandler(uc *usecase.UploadUseCase, log *logger.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// UploadImage godoc
// @Summary      Subir imagen de producto
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "JPEG, PNG, WebP o GIF de hasta 5MB"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/upload/image [post]
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "VALIDATION", "No file provided")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "VALIDATION", "file could not be read")
	}
	defer f.Close()

	out, err := h.uc.UploadImage(c.UserContext(), f, fh.Filename, fh.Header.Get(fiber.HeaderContentType), fh.Size)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
