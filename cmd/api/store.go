package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
	"github.com/jhoicas/cervejaria-api/internal/infrastructure/memory"
	"github.com/jhoicas/cervejaria-api/internal/infrastructure/mysql"
	"github.com/jhoicas/cervejaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cervejaria-api/internal/infrastructure/redisstore"
	"github.com/jhoicas/cervejaria-api/pkg/config"
	"github.com/jhoicas/cervejaria-api/pkg/logger"
)

// openStore construye el repositorio de cervezas según STORE_DRIVER.
// El closer devuelto libera la conexión subyacente; nunca es nil.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.BeerRepository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Store.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewBeerRepository(pool), pool.Close, nil

	case config.DriverMySQL:
		db, err := mysql.Open(ctx, cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Store.AutoMigrate {
			if err := mysql.EnsureSchema(ctx, db); err != nil {
				db.Close()
				return nil, nil, err
			}
		}
		return mysql.NewBeerRepository(db), func() { _ = db.Close() }, nil

	case config.DriverRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewBeerRepository(client), func() { _ = client.Close() }, nil

	case config.DriverMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return memory.NewBeerRepository(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Store.Driver)
}
