package mysql

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/repository"
)

// SnapshotRecord holds the single analytics snapshot row; the dynamic
// string-keyed maps live in JSON columns.
type SnapshotRecord struct {
	ID               uint64         `gorm:"primaryKey"`
	TotalOrders      int64          `gorm:"not null"`
	TotalRevenue     float64        `gorm:"not null"`
	OrdersByLocation datatypes.JSON `gorm:"not null"`
	PopularItems     datatypes.JSON `gorm:"not null"`
	OrdersByDay      datatypes.JSON `gorm:"not null"`
}

func (SnapshotRecord) TableName() string { return "analytics_snapshots" }

const snapshotRowID = 1

func snapshotToRecord(s *domain.AnalyticsSnapshot) (*SnapshotRecord, error) {
	byLocation, err := json.Marshal(s.OrdersByLocation)
	if err != nil {
		return nil, err
	}
	popular, err := json.Marshal(s.PopularItems)
	if err != nil {
		return nil, err
	}
	byDay, err := json.Marshal(s.OrdersByDay)
	if err != nil {
		return nil, err
	}
	return &SnapshotRecord{
		ID:               snapshotRowID,
		TotalOrders:      s.TotalOrders,
		TotalRevenue:     s.TotalRevenue,
		OrdersByLocation: byLocation,
		PopularItems:     popular,
		OrdersByDay:      byDay,
	}, nil
}

func snapshotFromRecord(rec *SnapshotRecord) (*domain.AnalyticsSnapshot, error) {
	snap := domain.NewAnalyticsSnapshot()
	snap.TotalOrders = rec.TotalOrders
	snap.TotalRevenue = rec.TotalRevenue
	if err := json.Unmarshal(rec.OrdersByLocation, &snap.OrdersByLocation); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rec.PopularItems, &snap.PopularItems); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rec.OrdersByDay, &snap.OrdersByDay); err != nil {
		return nil, err
	}
	return snap, nil
}

type analyticsRepo struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) loadTx(tx *gorm.DB, forUpdate bool) (*domain.AnalyticsSnapshot, error) {
	q := tx
	if forUpdate {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var rec SnapshotRecord
	if err := q.First(&rec, snapshotRowID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewAnalyticsSnapshot(), nil
		}
		return nil, err
	}
	return snapshotFromRecord(&rec)
}

func (r *analyticsRepo) Load() (*domain.AnalyticsSnapshot, error) {
	snap, err := r.loadTx(r.db, false)
	if err != nil {
		return nil, apperr.StoreReadErr("Failed to read analytics data", err)
	}
	return snap, nil
}

// Update folds under a row lock so concurrent creations serialize.
func (r *analyticsRepo) Update(fn func(*domain.AnalyticsSnapshot)) (*domain.AnalyticsSnapshot, error) {
	var snap *domain.AnalyticsSnapshot
	err := r.db.Transaction(func(tx *gorm.DB) error {
		s, err := r.loadTx(tx, true)
		if err != nil {
			return err
		}

		fn(s)

		rec, err := snapshotToRecord(s)
		if err != nil {
			return err
		}
		if err := tx.Save(rec).Error; err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		return nil, apperr.StoreWriteErr("Failed to save analytics data", err)
	}
	return snap, nil
}
