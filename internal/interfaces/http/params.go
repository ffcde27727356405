package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/dailycare-store/internal/application/dto"
)

// paramID lee un parámetro de ruta numérico positivo.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx, name string) error {
	return badRequest(c, "VALIDATION", "Invalid "+name)
}

func pageQuery(c *fiber.Ctx) dto.PageRequest {
	return dto.PageRequest{Skip: c.QueryInt("skip", 0), Limit: c.QueryInt("limit", 0)}
}

// queryDecimal lee un decimal opcional; ok=false si viene con formato inválido.
func queryDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}
