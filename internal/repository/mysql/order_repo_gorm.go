package mysql

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/repository"
)

// OrderRecord is the relational shape of an order. Seq preserves
// insertion order so FindAll matches the document store's append order;
// items stay denormalized as a JSON column, mirroring the document model.
type OrderRecord struct {
	Seq             uint64         `gorm:"primaryKey;autoIncrement"`
	ID              string         `gorm:"uniqueIndex;size:36;not null"`
	Items           datatypes.JSON `gorm:"not null"`
	Total           float64        `gorm:"not null"`
	Customer        string         `gorm:"not null"`
	Location        string         `gorm:"index;not null"`
	Status          string         `gorm:"index;not null"`
	Timestamp       time.Time      `gorm:"not null"`
	StatusUpdatedAt *time.Time     `gorm:"column:updated_at"`
}

func (OrderRecord) TableName() string { return "orders" }

func toRecord(o *domain.Order) (*OrderRecord, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}
	return &OrderRecord{
		ID:              o.ID,
		Items:           items,
		Total:           o.Total,
		Customer:        o.Customer,
		Location:        o.Location,
		Status:          string(o.Status),
		Timestamp:       o.Timestamp,
		StatusUpdatedAt: o.UpdatedAt,
	}, nil
}

func fromRecord(rec *OrderRecord) (*domain.Order, error) {
	var items []domain.OrderItem
	if err := json.Unmarshal(rec.Items, &items); err != nil {
		return nil, err
	}
	return &domain.Order{
		ID:        rec.ID,
		Items:     items,
		Total:     rec.Total,
		Customer:  rec.Customer,
		Location:  rec.Location,
		Status:    domain.OrderStatus(rec.Status),
		Timestamp: rec.Timestamp,
		UpdatedAt: rec.StatusUpdatedAt,
	}, nil
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Insert(order *domain.Order) error {
	rec, err := toRecord(order)
	if err != nil {
		return apperr.StoreWriteErr("Failed to save order", err)
	}
	if err := r.db.Create(rec).Error; err != nil {
		return apperr.StoreWriteErr("Failed to save order", err)
	}
	return nil
}

func (r *orderRepo) FindByID(id string) (*domain.Order, error) {
	var rec OrderRecord
	if err := r.db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.StoreReadErr("Failed to read orders data", err)
	}
	return fromRecord(&rec)
}

func (r *orderRepo) UpdateStatus(id string, status domain.OrderStatus, at time.Time) (*domain.Order, error) {
	var rec OrderRecord
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}
		rec.Status = string(status)
		rec.StatusUpdatedAt = &at
		return tx.Model(&rec).Updates(map[string]any{
			"status":     rec.Status,
			"updated_at": rec.StatusUpdatedAt,
		}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.StoreWriteErr("Failed to update order", err)
	}
	return fromRecord(&rec)
}

func (r *orderRepo) FindAll() ([]domain.Order, error) {
	var recs []OrderRecord
	if err := r.db.Order("seq ASC").Find(&recs).Error; err != nil {
		return nil, apperr.StoreReadErr("Failed to read orders data", err)
	}

	orders := make([]domain.Order, 0, len(recs))
	for i := range recs {
		o, err := fromRecord(&recs[i])
		if err != nil {
			return nil, apperr.StoreReadErr("Failed to read orders data", err)
		}
		orders = append(orders, *o)
	}
	return orders, nil
}
