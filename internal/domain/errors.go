package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrAlreadyRegistered = errors.New("la cerveza ya está registrada")
	ErrNotFound          = errors.New("cerveza no encontrada")
	ErrNotExists         = errors.New("no existe cerveza con el id informado")
	// ErrCapacityExceeded cubre tanto superar el máximo como bajar de cero.
	ErrCapacityExceeded = errors.New("el stock resultante queda fuera de [0, máximo]")
	ErrInvalidInput     = errors.New("entrada inválida")
)
