package storefront

// Wishlist conjunto ordenado de productos guardados.
type Wishlist struct {
	items []Product
}

// Add guarda el producto; devuelve false si ya estaba.
func (w *Wishlist) Add(p Product) bool {
	if w.Contains(p.ID) {
		return false
	}
	w.items = append(w.items, p)
	return true
}

// Remove quita el producto; devuelve false si no estaba.
func (w *Wishlist) Remove(productID int64) bool {
	for i, p := range w.items {
		if p.ID == productID {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle agrega o quita el producto y devuelve si quedó guardado.
func (w *Wishlist) Toggle(p Product) bool {
	if w.Remove(p.ID) {
		return false
	}
	w.items = append(w.items, p)
	return true
}

// Contains indica si el producto está guardado.
func (w *Wishlist) Contains(productID int64) bool {
	for _, p := range w.items {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Count número de productos guardados.
func (w *Wishlist) Count() int { return len(w.items) }

// Items copia de los productos.
func (w *Wishlist) Items() []Product {
	out := make([]Product, len(w.items))
	copy(out, w.items)
	return out
}
