package jsonfile

import (
	"sync"
	"time"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/repository"
)

var _ repository.OrderRepository = (*OrderRepository)(nil)

type ordersDocument struct {
	Orders []domain.Order `json:"orders"`
}

type OrderRepository struct {
	store *documentStore
	mu    sync.Mutex
}

func NewOrderRepository(path string) *OrderRepository {
	return &OrderRepository{store: newDocumentStore(path)}
}

func (r *OrderRepository) load() (*ordersDocument, error) {
	var doc ordersDocument
	if err := r.store.read(&doc); err != nil {
		return nil, apperr.StoreReadErr("Failed to read orders data", err)
	}
	return &doc, nil
}

func (r *OrderRepository) Insert(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	doc.Orders = append(doc.Orders, *order)
	if err := r.store.write(doc); err != nil {
		return apperr.StoreWriteErr("Failed to save order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			o := doc.Orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (r *OrderRepository) UpdateStatus(id string, status domain.OrderStatus, at time.Time) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	doc.Orders[idx].Status = status
	doc.Orders[idx].UpdatedAt = &at

	if err := r.store.write(doc); err != nil {
		return nil, apperr.StoreWriteErr("Failed to update order", err)
	}

	o := doc.Orders[idx]
	return &o, nil
}

func (r *OrderRepository) FindAll() ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}
