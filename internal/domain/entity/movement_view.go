package entity

// MovementWithProduct movimiento con los datos del producto referenciado.
// Product es nil si el producto ya no existe.
type MovementWithProduct struct {
	Movement
	Product *Product
}
