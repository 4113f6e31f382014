// Package jsonfile persists the two documents of the system — the order
// list and the analytics snapshot — as whole JSON files. Every mutation is
// a full read-modify-write of one document, serialized behind a per-document
// mutex. This is the deliberate small-scale tradeoff; the mysql backend is
// the indexed alternative.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"fishburger-backend/internal/domain"
)

const (
	writeAttempts = 3
	writeBackoff  = 50 * time.Millisecond
)

// documentStore reads and writes one JSON document. Callers are expected
// to hold their own lock across a read-modify-write cycle; the store only
// guarantees each individual write lands atomically (temp file + rename).
type documentStore struct {
	path string
}

func newDocumentStore(path string) *documentStore {
	return &documentStore{path: path}
}

// init writes the zero document if the file does not exist yet.
func (s *documentStore) init(zero any) error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return s.write(zero)
}

func (s *documentStore) read(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (s *documentStore) write(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < writeAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(writeBackoff)
		}
		if lastErr = s.writeOnce(data); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("write %s: %w", s.path, lastErr)
}

func (s *documentStore) writeOnce(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Store bundles the file-backed repositories over a shared data directory.
type Store struct {
	Orders    *OrderRepository
	Analytics *AnalyticsRepository
}

// Open creates the data directory and both documents (zeroed) if absent.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	orders := NewOrderRepository(filepath.Join(dataDir, "orders.json"))
	if err := orders.store.init(ordersDocument{Orders: []domain.Order{}}); err != nil {
		return nil, err
	}

	analytics := NewAnalyticsRepository(filepath.Join(dataDir, "analytics.json"))
	if err := analytics.store.init(domain.NewAnalyticsSnapshot()); err != nil {
		return nil, err
	}

	return &Store{Orders: orders, Analytics: analytics}, nil
}
