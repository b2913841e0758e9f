package order

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusAccepted  OrderStatus = "ACCEPTED"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// CancelWindow is how long after creation a customer may cancel.
const CancelWindow = 6 * time.Hour

// LineItem is a snapshot of one product taken at order time. It is embedded
// in the order row and never re-derived from live product state.
type LineItem struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image"`
}

type Order struct {
	ID          uint
	UserID      uint
	Username    string
	Email       string
	Phone       string
	Address     string
	Items       []LineItem
	TotalAmount int64
	Status      OrderStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PlaceOrderInput struct {
	UserID      uint
	Username    string
	Email       string
	Phone       string
	Address     string
	Items       []LineItem
	TotalAmount int64
}

type FilterInput struct {
	Search   *string
	Status   *OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusAccepted, StatusCancelled},
	StatusAccepted: {StatusShipped, StatusCancelled},
	StatusShipped:  {StatusDelivered},
}

// ValidTransition reports whether from may move to. CANCELLED and DELIVERED
// are terminal.
func ValidTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
