package domain

import "time"

// OrderActivityEvent is emitted once per lifecycle transition, including
// creation. Consumers (notifications, audit) key on the routing pattern;
// the payload carries who moved the order and where it landed.
type OrderActivityEvent struct {
	OrderID    string      `json:"orderId"`
	Status     OrderStatus `json:"status"`
	Actor      string      `json:"actor"`
	OccurredAt time.Time   `json:"occurredAt"`
}
