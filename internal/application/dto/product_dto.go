package dto

import "time"

// ProductRequest campos editables de un producto. Se usa tanto para crear como para
// actualizar (sobrescritura completa). Quantity es puntero para distinguir null de 0.
type ProductRequest struct {
	Description              string `json:"description"`
	Quantity                 *int64 `json:"quantity"`
	Unit                     string `json:"unit"`
	SupplementaryDescription string `json:"supplementaryDescription"`
	Expiry                   string `json:"expiry"`
	Supplier                 string `json:"supplier"`
	ProcessNumber            string `json:"processNumber"`
	Notes                    string `json:"notes"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                       string    `json:"id"`
	Code                     int64     `json:"code"`
	Description              string    `json:"description"`
	Quantity                 int64     `json:"quantity"`
	Unit                     string    `json:"unit"`
	SupplementaryDescription string    `json:"supplementaryDescription"`
	Expiry                   string    `json:"expiry"`
	Supplier                 string    `json:"supplier"`
	ProcessNumber            string    `json:"processNumber"`
	Notes                    string    `json:"notes"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

// ProductMutationResponse respuesta de POST/PUT /products.
type ProductMutationResponse struct {
	Success bool             `json:"success"`
	Product *ProductResponse `json:"product"`
}

// DeleteProductResponse respuesta de DELETE /products/:id.
type DeleteProductResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	MovementsRemoved int64  `json:"movementsRemoved"`
}
