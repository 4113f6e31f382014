package services

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	rabbit "fishburger-backend/internal/infra/rabbitmq"
	"fishburger-backend/internal/repository"
)

// AnalyticsRecorder folds a freshly created order into the running snapshot.
type AnalyticsRecorder interface {
	RecordOrder(ctx context.Context, order *domain.Order) error
}

// ListFilter narrows List results. Limit keeps the last n matching orders
// in insertion order before the descending timestamp sort, replicating the
// store's truncation semantics.
type ListFilter struct {
	Location string
	Status   string
	Limit    int
}

type OrderService struct {
	repo      repository.OrderRepository
	analytics AnalyticsRecorder
	publisher rabbit.PublisherInterface
	policy    domain.TransitionPolicy
	log       *slog.Logger
	now       func() time.Time
}

func NewOrderService(r repository.OrderRepository, a AnalyticsRecorder, pub rabbit.PublisherInterface, log *slog.Logger) *OrderService {
	return &OrderService{
		repo:      r,
		analytics: a,
		publisher: pub,
		policy:    domain.PermissiveTransitions{},
		log:       log,
		now:       time.Now,
	}
}

// SetTransitionPolicy swaps in a stricter state machine. The default
// accepts any valid status from any state.
func (s *OrderService) SetTransitionPolicy(p domain.TransitionPolicy) {
	s.policy = p
}

// SetClock overrides the order timestamp source.
func (s *OrderService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *OrderService) Create(ctx context.Context, draft domain.OrderDraft) (*domain.Order, error) {
	if len(draft.Items) == 0 || draft.Total == 0 || draft.Customer == "" {
		return nil, apperr.InvalidErr("Missing required fields: items, total, customer")
	}

	location := draft.Location
	if location == "" {
		location = domain.LocationUnknown
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		Items:     draft.Items,
		Total:     draft.Total,
		Customer:  draft.Customer,
		Location:  location,
		Status:    domain.StatusPending,
		Timestamp: s.now().UTC(),
	}

	if err := s.repo.Insert(order); err != nil {
		return nil, err
	}

	// The snapshot fold follows the insert synchronously; a failure here
	// does not undo an already persisted order.
	if err := s.analytics.RecordOrder(ctx, order); err != nil {
		s.log.Error("analytics update failed", "order_id", order.ID, "err", err)
	}

	go s.publishActivity(rabbit.RouteOrderCreated, order.ID, order.Status, order.Customer)

	return order, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, apperr.NotFoundErr("Order not found")
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context, filter ListFilter) ([]domain.Order, error) {
	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	orders = filterOrders(orders, func(o *domain.Order) bool {
		if filter.Location != "" && o.Location != filter.Location {
			return false
		}
		if filter.Status != "" && string(o.Status) != filter.Status {
			return false
		}
		return true
	})

	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[len(orders)-filter.Limit:]
	}

	sortByTimestamp(orders, false)
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status, actor string) (*domain.Order, error) {
	target := domain.OrderStatus(status)
	if !target.Valid() {
		return nil, apperr.InvalidErr("Invalid status. Must be one of: " + joinStatuses())
	}

	current, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperr.NotFoundErr("Order not found")
	}

	if !s.policy.Allowed(current.Status, target) {
		return nil, apperr.InvalidErr("Transition from " + string(current.Status) + " to " + string(target) + " is not allowed")
	}

	updated, err := s.repo.UpdateStatus(id, target, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFoundErr("Order not found")
	}

	if actor == "" {
		actor = "api"
	}
	go s.publishActivity(rabbit.RouteOrderStatusChanged, updated.ID, updated.Status, actor)

	return updated, nil
}

// KitchenOrders returns pending and preparing orders, oldest first.
func (s *OrderService) KitchenOrders(ctx context.Context, location string) ([]domain.Order, error) {
	return s.dashboard(location, domain.StatusPending, domain.StatusPreparing)
}

// DeliveryOrders returns ready and out-for-delivery orders, oldest first.
func (s *OrderService) DeliveryOrders(ctx context.Context, location string) ([]domain.Order, error) {
	return s.dashboard(location, domain.StatusReady, domain.StatusOutForDelivery)
}

func (s *OrderService) dashboard(location string, statuses ...domain.OrderStatus) ([]domain.Order, error) {
	orders, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}

	orders = filterOrders(orders, func(o *domain.Order) bool {
		match := false
		for _, st := range statuses {
			if o.Status == st {
				match = true
				break
			}
		}
		if !match {
			return false
		}
		return location == "" || o.Location == location
	})

	sortByTimestamp(orders, true)
	return orders, nil
}

func (s *OrderService) publishActivity(route, orderID string, status domain.OrderStatus, actor string) {
	if s.publisher == nil {
		return
	}

	evt := domain.OrderActivityEvent{
		OrderID:    orderID,
		Status:     status,
		Actor:      actor,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.Publish(context.Background(), route, evt); err != nil {
		s.log.Error("failed to publish activity event", "route", route, "order_id", orderID, "err", err)
	}
}

func filterOrders(orders []domain.Order, keep func(*domain.Order) bool) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for i := range orders {
		if keep(&orders[i]) {
			out = append(out, orders[i])
		}
	}
	return out
}

func sortByTimestamp(orders []domain.Order, ascending bool) {
	sort.SliceStable(orders, func(i, j int) bool {
		if ascending {
			return orders[i].Timestamp.Before(orders[j].Timestamp)
		}
		return orders[j].Timestamp.Before(orders[i].Timestamp)
	})
}

func joinStatuses() string {
	parts := make([]string, 0, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		parts = append(parts, string(st))
	}
	return strings.Join(parts, ", ")
}
