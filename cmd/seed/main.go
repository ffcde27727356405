// seed carga las categorías base del catálogo (y opcionalmente productos) en PostgreSQL.
// Es idempotente: lo que ya existe por slug se omite.
//
// Uso: go run ./cmd/seed [ruta/catalogo.yaml]
// Sin argumentos usa las categorías embebidas (categories.yaml).
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/dailycare-store/internal/infrastructure/postgres"
	"github.com/jhoicas/dailycare-store/pkg/config"
	"github.com/jhoicas/dailycare-store/pkg/logger"
)

//go:embed categories.yaml
var defaultCatalog []byte

func main() {
	raw := defaultCatalog
	if len(os.Args) > 1 {
		b, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "leer %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		raw = b
	}
	file, err := parseSeed(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo conectar a la base de datos")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones fallidas")
	}

	s := &seeder{
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		log:        log,
		now:        time.Now,
	}
	r, err := s.run(ctx, file)
	if err != nil {
		log.Fatal().Err(err).Msg("seed incompleto")
	}
	log.Info().
		Int("categorias_agregadas", r.CategoriesAdded).
		Int("categorias_existentes", r.CategoriesSkipped).
		Int("productos_agregados", r.ProductsAdded).
		Int("productos_existentes", r.ProductsSkipped).
		Msg("seed terminado")
}
