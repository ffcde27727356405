package dto

// PageRequest paginación estilo skip/limit (contrato del storefront).
type PageRequest struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y límites: limit en [1, max], skip >= 0.
func (p *PageRequest) Normalize(def, max int) {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > max {
		p.Limit = max
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// ErrorResponse cuerpo de error HTTP. Detail es lo que muestra el storefront.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
