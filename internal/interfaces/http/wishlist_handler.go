package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// WishlistHandler lista de deseos del usuario autenticado.
type WishlistHandler struct {
	uc  *usecase.WishlistUseCase
	log *logger.Logger
}

func NewWishlistHandler(uc *usecase.WishlistUseCase, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WishlistItemResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar a la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WishlistItemRequest  true  "product_id"
// @Success      200   {object}  dto.WishlistItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/wishlist [post]
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var in dto.WishlistItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar de la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wishlist/{product_id} [delete]
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	productID, ok := paramID(c, "product_id")
	if !ok {
		return invalidID(c, "product id")
	}
	if err := h.uc.Remove(c.UserContext(), GetUserID(c), productID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Removed from wishlist"})
}
