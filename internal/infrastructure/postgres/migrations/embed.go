// Package migrations contiene las migraciones SQL embebidas de PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
