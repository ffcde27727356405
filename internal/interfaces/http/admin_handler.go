package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/analytics"
	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// AdminHandler panel de administración: estadísticas, usuarios, pedidos y notificaciones.
type AdminHandler struct {
	stats *analytics.StatsUseCase
	users *usecase.UserUseCase
	admin *usecase.AdminUseCase
	log   *logger.Logger
}

func NewAdminHandler(stats *analytics.StatsUseCase, users *usecase.UserUseCase, admin *usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{stats: stats, users: users, admin: admin, log: log}
}

// Stats godoc
// @Summary      Estadísticas del panel
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	out, err := h.stats.GetStats(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Offset"  default(0)
// @Param        limit  query  int  false  "Límite"  default(100)
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext(), pageQuery(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetUser godoc
// @Summary      Obtener usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "user id")
	}
	out, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateUser godoc
// @Summary      Actualizar is_admin / is_active
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.AdminUserUpdateRequest  true  "is_admin, is_active"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "user id")
	}
	var in dto.AdminUserUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.users.Update(c.UserContext(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ToggleAdmin godoc
// @Summary      Alternar rol de administrador
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/toggle-admin [put]
func (h *AdminHandler) ToggleAdmin(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "user id")
	}
	out, err := h.users.ToggleAdmin(c.UserContext(), GetUserID(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Activar / desactivar usuario
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/admin/users/{id}/toggle-active [put]
func (h *AdminHandler) ToggleActive(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "user id")
	}
	out, err := h.users.ToggleActive(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListOrders godoc
// @Summary      Listar todos los pedidos
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        skip    query  int     false  "Offset"  default(0)
// @Param        limit   query  int     false  "Límite"  default(100)
// @Param        status  query  string  false  "pending, confirmed, shipped, delivered, cancelled"
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *fiber.Ctx) error {
	out, err := h.admin.ListOrders(c.UserContext(), dto.OrderListQuery{
		PageRequest: pageQuery(c),
		Status:      c.Query("status"),
	})
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateOrderStatus godoc
// @Summary      Cambiar estado de un pedido
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id      path   int     true  "ID del pedido"
// @Param        status  query  string  true  "Nuevo estado"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/status [put]
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "order id")
	}
	out, err := h.admin.UpdateOrderStatus(c.UserContext(), id, c.Query("status"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Notificaciones recientes (máx. 20)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/admin/notifications [get]
func (h *AdminHandler) Notifications(c *fiber.Ctx) error {
	return c.JSON(h.admin.Notifications())
}

// ClearNotification godoc
// @Summary      Descartar notificación
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la notificación"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/notifications/{id} [delete]
func (h *AdminHandler) ClearNotification(c *fiber.Ctx) error {
	if err := h.admin.ClearNotification(c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Notification cleared"})
}
