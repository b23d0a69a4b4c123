package entity

import "time"

// Tipos de movimiento del almacén.
const (
	MovementTypeEntry = "entry" // entrada
	MovementTypeExit  = "exit"  // salida
)

// Movement registra una entrada o salida de stock. Nunca se modifica; solo se
// elimina en cascada al borrar su producto.
type Movement struct {
	ID                string
	Type              string
	Quantity          int64
	WarehouseKeeper   string
	ResponsibleSector string
	Recipient         string
	OccurredAt        time.Time
	ProductID         string
	CreatedAt         time.Time
}

// IsValidMovementType indica si t es un tipo de movimiento conocido.
func IsValidMovementType(t string) bool {
	return t == MovementTypeEntry || t == MovementTypeExit
}
