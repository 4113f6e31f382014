package domain

import "time"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusOutForDelivery OrderStatus = "out-for-delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

// AllStatuses lists every recognized status, in lifecycle order.
var AllStatuses = []OrderStatus{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusCompleted,
	StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusOutForDelivery, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether an order still occupies the kitchen/delivery pipeline.
func (s OrderStatus) Active() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusOutForDelivery:
		return true
	}
	return false
}

const LocationUnknown = "unknown"

// KnownLocations are the branch identifiers, in the fixed order the
// analytics location vector reports them.
var KnownLocations = []string{"rooftop", "medina", "casa"}

type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Customer  string      `json:"customer"`
	Location  string      `json:"location"`
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
}

// OrderDraft is what a client submits; id, status and timestamp are
// assigned server-side. Total is stored as asserted by the client and is
// not recomputed from the items.
type OrderDraft struct {
	Items    []OrderItem
	Total    float64
	Customer string
	Location string
}
