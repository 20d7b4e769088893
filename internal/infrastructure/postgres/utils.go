package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE relevantes para beers.
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (nombre repetido).
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == uniqueViolation
}

// isCheckViolation verifica si un error viene de un CHECK (cantidad fuera de [0, max_quantity]).
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == checkViolation
}
