package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/dailycare-store/internal/domain"
	"github.com/jhoicas/dailycare-store/internal/domain/entity"
)

// CartRepository implementación en memoria de repository.CartRepository.
type CartRepository struct{ s *Store }

func (r *CartRepository) ListByUser(_ context.Context, userID int64) ([]*entity.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.CartItem, 0)
	for _, it := range r.s.cart {
		if it.UserID == userID {
			out = append(out, r.s.cloneCartItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CartRepository) GetByID(_ context.Context, userID, itemID int64) (*entity.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if it, ok := r.s.cart[itemID]; ok && it.UserID == userID {
		return r.s.cloneCartItem(it), nil
	}
	return nil, nil
}

func (r *CartRepository) Add(_ context.Context, item *entity.CartItem, maxQuantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.cart {
		if it.UserID == item.UserID && it.ProductID == item.ProductID {
			cp := *it
			cp.Quantity = min(it.Quantity+item.Quantity, maxQuantity)
			r.s.cart[id] = &cp
			item.ID, item.Quantity = id, cp.Quantity
			return nil
		}
	}
	item.ID = r.s.nextID()
	cp := *item
	cp.Product = nil
	r.s.cart[item.ID] = &cp
	return nil
}

func (r *CartRepository) UpdateQuantity(_ context.Context, itemID int64, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.cart[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := *it
	cp.Quantity = quantity
	r.s.cart[itemID] = &cp
	return nil
}

func (r *CartRepository) Delete(_ context.Context, itemID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.cart, itemID)
	return nil
}

func (r *CartRepository) ClearByUser(_ context.Context, userID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	next := make(map[int64]*entity.CartItem, len(r.s.cart))
	for id, it := range r.s.cart {
		if it.UserID != userID {
			next[id] = it
		}
	}
	r.s.cart = next
	return nil
}

func (s *Store) cloneCartItem(it *entity.CartItem) *entity.CartItem {
	cp := *it
	if p, ok := s.products[it.ProductID]; ok {
		cp.Product = s.cloneProduct(p)
	}
	return &cp
}

// WishlistRepository implementación en memoria de repository.WishlistRepository.
type WishlistRepository struct{ s *Store }

func (r *WishlistRepository) ListByUser(_ context.Context, userID int64) ([]*entity.WishlistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.WishlistItem, 0)
	for _, it := range r.s.wishlist {
		if it.UserID == userID {
			cp := *it
			if p, ok := r.s.products[it.ProductID]; ok {
				cp.Product = r.s.cloneProduct(p)
			}
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *WishlistRepository) GetByProduct(_ context.Context, userID, productID int64) (*entity.WishlistItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.wishlist {
		if it.UserID == userID && it.ProductID == productID {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *WishlistRepository) Create(_ context.Context, item *entity.WishlistItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.wishlist {
		if it.UserID == item.UserID && it.ProductID == item.ProductID {
			return domain.ErrAlreadyInWishlist
		}
	}
	item.ID = r.s.nextID()
	cp := *item
	cp.Product = nil
	r.s.wishlist[item.ID] = &cp
	return nil
}

func (r *WishlistRepository) DeleteByProduct(_ context.Context, userID, productID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, it := range r.s.wishlist {
		if it.UserID == userID && it.ProductID == productID {
			delete(r.s.wishlist, id)
			return true, nil
		}
	}
	return false, nil
}
