package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestConstraintViolation_SoloConPgError(t *testing.T) {
	unique := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert cart item: %w", &pgconn.PgError{Code: "23503"})

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(fk))
}

func TestConstraintViolation_TextoConCodigoNoCuenta(t *testing.T) {
	assert.False(t, isUniqueViolation(errors.New("producto 23505 no encontrado")))
	assert.False(t, isForeignKeyViolation(fmt.Errorf("pedido 123503: %w", errors.New("timeout"))))
}
