package entity

// WishlistItem producto guardado por un usuario. Un producto aparece como máximo una vez por usuario.
type WishlistItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Product   *Product
}
