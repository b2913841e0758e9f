package notification

import "encoding/json"

// EventOrderPlaced is the only event type the storefront currently emits.
const EventOrderPlaced = "OrderPlaced"

type Envelope struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

type EventItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type OrderPlacedEvent struct {
	OrderID  uint        `json:"order_id"`
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Total    int64       `json:"total"`
	Items    []EventItem `json:"items"`
}
