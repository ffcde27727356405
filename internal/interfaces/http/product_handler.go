package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
	"github.com/jhoicas/dailycare-store/internal/application/usecase"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

// ProductHandler catálogo público y CRUD de administración de productos.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         products
// @Produce      json
// @Param        skip          query  int     false  "Offset"  default(0)
// @Param        limit         query  int     false  "Límite"  default(100)
// @Param        category      query  string  false  "Slug de categoría"
// @Param        product_type  query  string  false  "serum, cream, oil, tablet, scrub"
// @Param        min_price     query  number  false  "Precio mínimo"
// @Param        max_price     query  number  false  "Precio máximo"
// @Param        search        query  string  false  "Texto en el nombre"
// @Param        sort_by       query  string  false  "price_low, price_high, rating, newest"
// @Success      200  {array}   dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	q := dto.ProductListQuery{
		PageRequest: pageQuery(c),
		Category:    c.Query("category"),
		ProductType: c.Query("product_type"),
		Search:      c.Query("search"),
		SortBy:      c.Query("sort_by"),
	}
	var ok bool
	if q.MinPrice, ok = queryDecimal(c, "min_price"); !ok {
		return badRequest(c, "VALIDATION", "Invalid min_price")
	}
	if q.MaxPrice, ok = queryDecimal(c, "max_price"); !ok {
		return badRequest(c, "VALIDATION", "Invalid max_price")
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Bestsellers godoc
// @Summary      Productos más vendidos
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(4)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/bestsellers [get]
func (h *ProductHandler) Bestsellers(c *fiber.Ctx) error {
	out, err := h.uc.Bestsellers(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// NewArrivals godoc
// @Summary      Novedades
// @Tags         products
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(4)
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/new-arrivals [get]
func (h *ProductHandler) NewArrivals(c *fiber.Ctx) error {
	out, err := h.uc.NewArrivals(c.UserContext(), c.QueryInt("limit", 0))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "product id")
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetBySlug godoc
// @Summary      Obtener producto por slug
// @Tags         products
// @Produce      json
// @Param        slug  path  string  true  "Slug del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/slug/{slug} [get]
func (h *ProductHandler) GetBySlug(c *fiber.Ctx) error {
	out, err := h.uc.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "product id")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidID(c, "product id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Product deleted successfully"})
}

// Feed godoc
// @Summary      Feed RSS de productos (Google Merchant)
// @Tags         products
// @Produce      xml
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/feeds/products.xml [get]
func (h *ProductHandler) Feed(c *fiber.Ctx) error {
	out, err := h.uc.Feed(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(out)
}
