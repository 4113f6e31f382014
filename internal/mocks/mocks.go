package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"fishburger-backend/internal/domain"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Insert(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status domain.OrderStatus, at time.Time) (*domain.Order, error) {
	args := m.Called(id, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAll() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Load() (*domain.AnalyticsSnapshot, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSnapshot), args.Error(1)
}

// Update runs fn against the snapshot configured as the first return
// value, so tests can observe the fold.
func (m *MockAnalyticsRepository) Update(fn func(*domain.AnalyticsSnapshot)) (*domain.AnalyticsSnapshot, error) {
	args := m.Called(fn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	snap := args.Get(0).(*domain.AnalyticsSnapshot)
	fn(snap)
	return snap, args.Error(1)
}

type MockAnalyticsRecorder struct {
	mock.Mock
}

func (m *MockAnalyticsRecorder) RecordOrder(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}
