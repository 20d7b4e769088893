package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

const beerColumns = `id, name, brand, max_quantity, quantity, type`

// BeerRepo implementación del puerto BeerRepository sobre PostgreSQL (usable con pool o tx).
type BeerRepo struct {
	q Querier
}

// NewBeerRepository construye el adaptador de persistencia para cervezas. Pasar pool o tx (Querier).
func NewBeerRepository(q Querier) *BeerRepo {
	return &BeerRepo{q: q}
}

// FindByName obtiene una cerveza por nombre. (nil, nil) si no existe.
func (r *BeerRepo) FindByName(ctx context.Context, name string) (*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beers WHERE name = $1`
	b, err := scanBeer(r.q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer by name: %w", err)
	}
	return b, nil
}

// FindByID obtiene una cerveza por ID. (nil, nil) si no existe.
func (r *BeerRepo) FindByID(ctx context.Context, id int64) (*entity.Beer, error) {
	query := `SELECT ` + beerColumns + ` FROM beers WHERE id = $1`
	b, err := scanBeer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return b, nil
}

// Save inserta (ID == 0, el id lo asigna BIGSERIAL) o actualiza la cerveza y devuelve la fila resultante.
func (r *BeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	var row pgx.Row
	if beer.ID == 0 {
		row = r.q.QueryRow(ctx, `
			INSERT INTO beers (name, brand, max_quantity, quantity, type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+beerColumns,
			beer.Name, beer.Brand, beer.Max, beer.Quantity, string(beer.Type),
		)
	} else {
		row = r.q.QueryRow(ctx, `
			UPDATE beers SET name = $2, brand = $3, max_quantity = $4, quantity = $5, type = $6
			WHERE id = $1
			RETURNING `+beerColumns,
			beer.ID, beer.Name, beer.Brand, beer.Max, beer.Quantity, string(beer.Type),
		)
	}
	saved, err := scanBeer(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyRegistered
		}
		if isCheckViolation(err) {
			return nil, domain.ErrCapacityExceeded
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotExists
		}
		return nil, fmt.Errorf("save beer: %w", err)
	}
	return saved, nil
}

// FindAll lista todas las cervezas ordenadas por id.
func (r *BeerRepo) FindAll(ctx context.Context) ([]*entity.Beer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+beerColumns+` FROM beers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list beers: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Beer, 0)
	for rows.Next() {
		b, err := scanBeer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan beer: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// DeleteByID elimina una cerveza por ID.
func (r *BeerRepo) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM beers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}
	return nil
}

func scanBeer(row pgx.Row) (*entity.Beer, error) {
	var b entity.Beer
	var beerType string
	if err := row.Scan(&b.ID, &b.Name, &b.Brand, &b.Max, &b.Quantity, &beerType); err != nil {
		return nil, err
	}
	b.Type = entity.BeerType(beerType)
	return &b, nil
}
