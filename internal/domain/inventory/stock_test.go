package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/cervejaria-api/internal/domain"
	"github.com/jhoicas/cervejaria-api/internal/domain/inventory"
)

func TestProjectIncrement(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		capacity int
		amount   int
		want     int
		wantErr  error
	}{
		{"dentro del máximo", 10, 100, 30, 40, nil},
		{"llega exactamente al máximo", 70, 100, 30, 100, nil},
		{"supera el máximo por uno", 70, 100, 31, 70, domain.ErrCapacityExceeded},
		{"muy por encima del máximo", 10, 50, 50, 10, domain.ErrCapacityExceeded},
		{"stock vacío", 0, 5, 5, 5, nil},
		{"amount máximo no desborda", 10, 50, math.MaxInt, 10, domain.ErrCapacityExceeded},
		{"amount máximo con stock lleno", 50, 50, math.MaxInt, 50, domain.ErrCapacityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.ProjectIncrement(tc.quantity, tc.capacity, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProjectDecrement(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		amount   int
		want     int
		wantErr  error
	}{
		{"resta parcial", 10, 5, 5, nil},
		{"llega exactamente a cero", 10, 10, 0, nil},
		{"baja de cero por uno", 10, 11, 10, domain.ErrCapacityExceeded},
		{"resta mayor que el stock", 10, 80, 10, domain.ErrCapacityExceeded},
		{"amount máximo no desborda", 10, math.MaxInt, 10, domain.ErrCapacityExceeded},
		{"amount máximo con stock vacío", 0, math.MaxInt, 0, domain.ErrCapacityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := inventory.ProjectDecrement(tc.quantity, tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
