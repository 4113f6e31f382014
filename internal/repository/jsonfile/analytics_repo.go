package jsonfile

import (
	"sync"

	"fishburger-backend/internal/apperr"
	"fishburger-backend/internal/domain"
	"fishburger-backend/internal/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepository)(nil)

type AnalyticsRepository struct {
	store *documentStore
	mu    sync.Mutex
}

func NewAnalyticsRepository(path string) *AnalyticsRepository {
	return &AnalyticsRepository{store: newDocumentStore(path)}
}

func (r *AnalyticsRepository) load() (*domain.AnalyticsSnapshot, error) {
	var snap domain.AnalyticsSnapshot
	if err := r.store.read(&snap); err != nil {
		return nil, apperr.StoreReadErr("Failed to read analytics data", err)
	}
	return &snap, nil
}

func (r *AnalyticsRepository) Load() (*domain.AnalyticsSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Update applies fn under the document lock so the whole read-modify-write
// cycle is a single critical section.
func (r *AnalyticsRepository) Update(fn func(*domain.AnalyticsSnapshot)) (*domain.AnalyticsSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.load()
	if err != nil {
		return nil, err
	}

	fn(snap)

	if err := r.store.write(snap); err != nil {
		return nil, apperr.StoreWriteErr("Failed to save analytics data", err)
	}
	return snap, nil
}
