package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	driver "github.com/go-sql-driver/mysql"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
	"github.com/jhoicas/cervejaria-api/internal/domain/repository"
)

var _ repository.BeerRepository = (*BeerRepo)(nil)

const (
	beerColumns = `id, name, brand, max_quantity, quantity, type`

	errDuplicateEntry      = 1062
	errCheckConstraintFail = 3819
)

const beersDDL = `
CREATE TABLE IF NOT EXISTS beers (
	id           BIGINT AUTO_INCREMENT PRIMARY KEY,
	name         VARCHAR(200) NOT NULL UNIQUE,
	brand        VARCHAR(200) NOT NULL,
	max_quantity INT NOT NULL,
	quantity     INT NOT NULL,
	type         VARCHAR(20) NOT NULL,
	CONSTRAINT beers_quantity_range CHECK (quantity >= 0 AND quantity <= max_quantity)
)`

// BeerRepo implementación de BeerRepository sobre MySQL.
type BeerRepo struct {
	db *sql.DB
}

func NewBeerRepository(db *sql.DB) *BeerRepo {
	return &BeerRepo{db: db}
}

// EnsureSchema crea la tabla beers si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, beersDDL); err != nil {
		return fmt.Errorf("create table beers: %w", err)
	}
	return nil
}

func (r *BeerRepo) FindByName(ctx context.Context, name string) (*entity.Beer, error) {
	b, err := scanBeer(r.db.QueryRowContext(ctx, `SELECT `+beerColumns+` FROM beers WHERE name = ?`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query beer by name: %w", err)
	}
	return b, nil
}

func (r *BeerRepo) FindByID(ctx context.Context, id int64) (*entity.Beer, error) {
	b, err := scanBeer(r.db.QueryRowContext(ctx, `SELECT `+beerColumns+` FROM beers WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query beer: %w", err)
	}
	return b, nil
}

// Save inserta cuando ID == 0 (usa LastInsertId) y actualiza en otro caso.
func (r *BeerRepo) Save(ctx context.Context, beer *entity.Beer) (*entity.Beer, error) {
	saved := *beer
	if beer.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO beers (name, brand, max_quantity, quantity, type)
			VALUES (?, ?, ?, ?, ?)`,
			beer.Name, beer.Brand, beer.Max, beer.Quantity, string(beer.Type),
		)
		if err != nil {
			return nil, mapError("insert beer", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("last insert id: %w", err)
		}
		saved.ID = id
		return &saved, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE beers SET name = ?, brand = ?, max_quantity = ?, quantity = ?, type = ?
		WHERE id = ?`,
		beer.Name, beer.Brand, beer.Max, beer.Quantity, string(beer.Type), beer.ID,
	)
	if err != nil {
		return nil, mapError("update beer", err)
	}
	// RowsAffected es 0 también cuando los valores no cambian, así que se confirma existencia aparte.
	if rows, _ := result.RowsAffected(); rows == 0 {
		existing, err := r.FindByID(ctx, beer.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotExists
		}
	}
	return &saved, nil
}

func (r *BeerRepo) FindAll(ctx context.Context) ([]*entity.Beer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+beerColumns+` FROM beers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query beers: %w", err)
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

func (r *BeerRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete beer: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBeer(row rowScanner) (*entity.Beer, error) {
	var b entity.Beer
	var beerType string
	if err := row.Scan(&b.ID, &b.Name, &b.Brand, &b.Max, &b.Quantity, &beerType); err != nil {
		return nil, err
	}
	b.Type = entity.BeerType(beerType)
	return &b, nil
}

func mapError(op string, err error) error {
	var myErr *driver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errDuplicateEntry:
			return domain.ErrAlreadyRegistered
		case errCheckConstraintFail:
			return domain.ErrCapacityExceeded
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
