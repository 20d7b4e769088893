package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/entity"
)

// Límites de forma aplicados en el borde (HTTP), no en el caso de uso.
const (
	MaxNameLength   = 200
	MaxCapacity     = 500
	MaxInitialStock = 100
)

// CreateBeerRequest entrada para registrar una cerveza.
type CreateBeerRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Brand    string `json:"brand" validate:"required,min=1,max=200"`
	Max      int    `json:"max" validate:"min=0,max=500"`
	Quantity int    `json:"quantity" validate:"min=0,max=100"`
	Type     string `json:"type" validate:"required"`
}

// Validate revisa la forma de la entrada. Devuelve un error que envuelve domain.ErrInvalidInput.
func (r *CreateBeerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Brand = strings.TrimSpace(r.Brand)
	switch {
	case r.Name == "" || utf8.RuneCountInString(r.Name) > MaxNameLength:
		return fmt.Errorf("%w: name debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, MaxNameLength)
	case r.Brand == "" || utf8.RuneCountInString(r.Brand) > MaxNameLength:
		return fmt.Errorf("%w: brand debe tener entre 1 y %d caracteres", domain.ErrInvalidInput, MaxNameLength)
	case r.Max < 0 || r.Max > MaxCapacity:
		return fmt.Errorf("%w: max debe estar entre 0 y %d", domain.ErrInvalidInput, MaxCapacity)
	case r.Quantity < 0 || r.Quantity > MaxInitialStock:
		return fmt.Errorf("%w: quantity debe estar entre 0 y %d", domain.ErrInvalidInput, MaxInitialStock)
	case r.Quantity > r.Max:
		return fmt.Errorf("%w: quantity no puede superar max", domain.ErrInvalidInput)
	}
	t, ok := entity.ParseBeerType(r.Type)
	if !ok {
		return fmt.Errorf("%w: type desconocido %q", domain.ErrInvalidInput, r.Type)
	}
	r.Type = string(t)
	return nil
}

// QuantityRequest entrada de incremento o decremento de stock.
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// Validate exige una cantidad positiva.
func (r QuantityRequest) Validate() error {
	if r.Quantity < 1 {
		return fmt.Errorf("%w: quantity debe ser mayor que cero", domain.ErrInvalidInput)
	}
	return nil
}

// BeerResponse salida de una cerveza.
type BeerResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Max      int    `json:"max"`
	Quantity int    `json:"quantity"`
	Type     string `json:"type"`
}
