package entity

// CartItem línea del carrito persistido de un usuario. Invariante: Quantity > 0.
type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	Product   *Product
}
