package repository

import (
	"time"

	"fishburger-backend/internal/domain"
)

// OrderRepository is the record-store contract over the order list.
// FindAll returns orders in insertion order; filtering, truncation and
// sorting belong to the service so every backend shares the exact same
// listing semantics. Lookup methods return (nil, nil) when the id is
// unknown.
type OrderRepository interface {
	Insert(order *domain.Order) error
	FindByID(id string) (*domain.Order, error)
	UpdateStatus(id string, status domain.OrderStatus, at time.Time) (*domain.Order, error)
	FindAll() ([]domain.Order, error)
}

// AnalyticsRepository persists the running-aggregate snapshot. Update
// holds the document's write lock (or transaction) across the whole
// read-modify-write cycle so concurrent creations cannot lose a fold step.
type AnalyticsRepository interface {
	Load() (*domain.AnalyticsSnapshot, error)
	Update(fn func(*domain.AnalyticsSnapshot)) (*domain.AnalyticsSnapshot, error)
}
