package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// CartHandler carrito persistido del usuario autenticado.
type CartHandler struct {
	uc  *usecase.CartUseCase
	log *logger.Logger
}

func NewCartHandler(uc *usecase.CartUseCase, log *logger.Logger) *CartHandler {
	return &CartHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Líneas del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CartItemResponse
// @Router       /api/cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Carrito con total y cantidad de unidades
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartSummaryResponse
// @Router       /api/cart/summary [get]
func (h *CartHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito (incrementa si ya existe)
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CartItemRequest  true  "product_id, quantity"
// @Success      200   {object}  dto.CartItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.CartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Add(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad (<= 0 elimina la línea)
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        item_id   path   int  true   "ID de la línea"
// @Param        quantity  query  int  false  "Nueva cantidad (también JSON {quantity})"
// @Success      200  {object}  dto.CartItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{item_id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	itemID, ok := paramID(c, "item_id")
	if !ok {
		return invalidID(c, "item id")
	}
	quantity, ok := quantityFrom(c)
	if !ok {
		return badRequest(c, "VALIDATION", "quantity is required")
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), GetUserID(c), itemID, quantity)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return c.JSON(dto.MessageResponse{Message: "Item removed from cart"})
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        item_id  path  int  true  "ID de la línea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/{item_id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	itemID, ok := paramID(c, "item_id")
	if !ok {
		return invalidID(c, "item id")
	}
	if err := h.uc.Remove(c.UserContext(), GetUserID(c), itemID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Removed from cart"})
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(c.UserContext(), GetUserID(c)); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cart cleared"})
}

// quantityFrom toma ?quantity= y, si falta, el cuerpo JSON {quantity}.
func quantityFrom(c *fiber.Ctx) (int, bool) {
	if raw := c.Query("quantity"); raw != "" {
		q, err := strconv.Atoi(raw)
		return q, err == nil
	}
	var in dto.CartQuantityRequest
	if len(c.Body()) == 0 || c.BodyParser(&in) != nil || in.Quantity == nil {
		return 0, false
	}
	return *in.Quantity, true
}
