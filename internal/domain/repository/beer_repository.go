package repository

import (
	"context"

	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
)

// BeerRepository define el puerto de persistencia para Beer (DIP).
// Las búsquedas devuelven (nil, nil) cuando el registro no existe.
type BeerRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Beer, error)
	FindByID(ctx context.Context, id int64) (*entity.Beer, error)
	// Save inserta cuando ID == 0 y actualiza en otro caso; devuelve la versión persistida.
	Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error)
	FindAll(ctx context.Context) ([]*entity.Beer, error)
	DeleteByID(ctx context.Context, id int64) error
}
