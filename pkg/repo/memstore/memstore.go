// Package memstore is an in-memory CompoundRepo with the same contract as the
// Postgres implementation: ids assigned once and never reused, idempotent
// delete, scans ordered newest first. It backs tests and local runs without a
// database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	model "github.com/wen89126-oss/lab-compound-db/pkg/model"
	repo "github.com/wen89126-oss/lab-compound-db/pkg/repo"
)

type Store struct {
	mu      sync.RWMutex
	nextID  int64
	records map[int64]*model.Compound
}

func New() *Store {
	return &Store{nextID: 1, records: make(map[int64]*model.Compound)}
}

var _ repo.CompoundRepo = (*Store)(nil)

func (s *Store) Create(_ context.Context, c *model.Compound) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID
	s.nextID++ // ids of deleted records are never handed out again
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	clone := *c
	s.records[c.ID] = &clone
	return nil
}

func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *Store) Scan(_ context.Context, q repo.ScanQuery) ([]*model.Compound, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Compound, 0, len(s.records))
	for _, c := range s.records {
		if q.Location != nil && c.Location != *q.Location {
			continue
		}
		if q.LidColor != nil && c.LidColor != *q.LidColor {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}
