package inventory

import "github.com/jhoicas/cervejaria-api/internal/domain"

// ProjectIncrement calcula la cantidad tras sumar amount (servicio de dominio).
// El límite superior es inclusivo: llegar exactamente a capacity está permitido.
// Se compara contra el espacio libre para que un amount enorme no desborde la suma.
func ProjectIncrement(quantity, capacity, amount int) (int, error) {
	if amount > capacity-quantity {
		return quantity, domain.ErrCapacityExceeded
	}
	return quantity + amount, nil
}

// ProjectDecrement calcula la cantidad tras restar amount. El piso es 0 (inclusivo).
// Bajar de cero reutiliza ErrCapacityExceeded.
func ProjectDecrement(quantity, amount int) (int, error) {
	if amount > quantity {
		return quantity, domain.ErrCapacityExceeded
	}
	return quantity - amount, nil
}
