package entity

import "time"

// Product representa un artículo del almacén.
// Code es secuencial y nunca se reutiliza; Quantity nunca es negativa.
type Product struct {
	ID                       string
	Code                     int64
	Description              string
	Quantity                 int64
	Unit                     string
	SupplementaryDescription string
	Expiry                   string
	Supplier                 string
	ProcessNumber            string
	Notes                    string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}
