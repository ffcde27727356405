// Package migrations embebe el esquema SQLite del almacenamiento local del storefront.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
