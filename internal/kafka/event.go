package kafka

import "time"

type EventType string

const (
	EventTypeSearch    EventType = "search"
	EventTypeView      EventType = "view"
	EventTypeAddToCart EventType = "addToCart"
	EventTypePurchase  EventType = "purchase"
)

// Event - событие покупательского поведения для аналитики.
// UserID пустой у анонимных покупателей - используем ID профиля корзины,
// чтобы предпочтения копились и до логина.
type Event struct {
	UserID     string    `json:"user_id"`
	Type       EventType `json:"type"`
	ProductIDs []string  `json:"product_ids,omitempty"`
	Query      string    `json:"query,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
