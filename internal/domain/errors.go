package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("cantidad insuficiente en stock")
	// ErrBlobNotFound lo devuelve el BlobStore cuando el binario ya no existe.
	ErrBlobNotFound = errors.New("archivo binario no encontrado")
)
