package storefront

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxNotifications tamaño del feed de administración.
const MaxNotifications = 20

// Tipos de notificación.
const (
	NotificationCart  = "cart"
	NotificationOrder = "order"
)

// Notification evento efímero para el panel de administración.
type Notification struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// NotificationFeed lista acotada, la más nueva primero. Segura para uso concurrente.
type NotificationFeed struct {
	mu    sync.Mutex
	items []Notification
	now   func() time.Time
}

// NewNotificationFeed construye un feed vacío.
func NewNotificationFeed() *NotificationFeed {
	return &NotificationFeed{now: time.Now}
}

// Push agrega una notificación al inicio y descarta las que exceden MaxNotifications.
func (f *NotificationFeed) Push(kind, message string) Notification {
	n := Notification{
		ID:      uuid.NewString(),
		Type:    kind,
		Message: message,
		Time:    f.now(),
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append([]Notification{n}, f.items...)
	if len(f.items) > MaxNotifications {
		f.items = f.items[:MaxNotifications]
	}
	return n
}

// List copia del feed.
func (f *NotificationFeed) List() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Clear descarta una notificación; devuelve false si no existía.
func (f *NotificationFeed) Clear(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.items {
		if n.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true
		}
	}
	return false
}
