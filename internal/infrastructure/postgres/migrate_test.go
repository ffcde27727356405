package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/dailycare-store/internal/infrastructure/postgres/migrations"
)

func TestExtractUpMigration_SinDown(t *testing.T) {
	sql := "-- +migrate Up\nCREATE TABLE a (id INT);\n-- +migrate Down\nDROP TABLE a;\n"
	up := extractUpMigration(sql)
	assert.Contains(t, up, "CREATE TABLE a")
	assert.NotContains(t, up, "DROP TABLE")

	assert.Equal(t, "SELECT 1;", extractUpMigration("SELECT 1;"))
}

func TestMigrations_EmbebidasCrearTodasLasTablas(t *testing.T) {
	content, err := fs.ReadFile(migrations.FS, "001_init.sql")
	require.NoError(t, err)
	up := extractUpMigration(string(content))
	for _, table := range []string{"users", "categories", "products", "cart_items", "wishlist_items", "orders", "order_items", "otps", "password_resets"} {
		assert.True(t, strings.Contains(up, "CREATE TABLE IF NOT EXISTS "+table+" ("), table)
	}
}
