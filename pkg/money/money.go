// Package money concentra las reglas monetarias de la tienda: GST y formato en rupias.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// GSTRate tarifa de GST aplicada a todos los pedidos (18%).
var GSTRate = decimal.NewFromFloat(0.18)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// WithGST devuelve el subtotal con GST incluido, redondeado a 2 decimales.
func WithGST(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(1).Add(GSTRate)).Round(2)
}

// GSTPart devuelve la porción de impuesto contenida en un total con GST.
func GSTPart(subtotal, total decimal.Decimal) decimal.Decimal {
	return total.Sub(subtotal).Round(2)
}

// FormatINR formatea un monto con símbolo de rupia y separadores locales, ej. "₹1,234.50".
func FormatINR(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return printer.Sprintf("₹%.2f", f)
}
