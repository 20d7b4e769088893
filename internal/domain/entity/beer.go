package entity

import "strings"

// BeerType estilo de la cerveza. Dato descriptivo, sin rol en las reglas de stock.
type BeerType string

const (
	BeerTypeLager    BeerType = "LAGER"
	BeerTypeMalzbier BeerType = "MALZBIER"
	BeerTypeWitbier  BeerType = "WITBIER"
	BeerTypeWeiss    BeerType = "WEISS"
	BeerTypeAle      BeerType = "ALE"
	BeerTypeIPA      BeerType = "IPA"
	BeerTypeStout    BeerType = "STOUT"
)

// BeerTypes lista los estilos aceptados, en el orden en que se documentan.
var BeerTypes = []BeerType{
	BeerTypeLager, BeerTypeMalzbier, BeerTypeWitbier, BeerTypeWeiss,
	BeerTypeAle, BeerTypeIPA, BeerTypeStout,
}

// ParseBeerType normaliza s (mayúsculas, sin espacios) y reporta si es un estilo conocido.
func ParseBeerType(s string) (BeerType, bool) {
	t := BeerType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range BeerTypes {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Beer representa una cerveza en stock.
// Invariante: 0 <= Quantity <= Max después de cualquier operación exitosa.
type Beer struct {
	ID       int64  // asignado por el repositorio al crear
	Name     string // único; la unicidad la valida el caso de uso
	Brand    string // fabricante
	Max      int    // capacidad máxima, fija desde la creación
	Quantity int
	Type     BeerType
}
