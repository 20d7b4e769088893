package postgres

import (
	"context"
	"fmt"
)

const beersDDL = `
CREATE TABLE IF NOT EXISTS beers (
	id           BIGSERIAL PRIMARY KEY,
	name         VARCHAR(200) NOT NULL UNIQUE,
	brand        VARCHAR(200) NOT NULL,
	max_quantity INTEGER NOT NULL CHECK (max_quantity >= 0),
	quantity     INTEGER NOT NULL CHECK (quantity >= 0 AND quantity <= max_quantity),
	type         VARCHAR(20) NOT NULL
)`

// EnsureSchema crea la tabla beers si no existe.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, beersDDL); err != nil {
		return fmt.Errorf("crear tabla beers: %w", err)
	}
	return nil
}
