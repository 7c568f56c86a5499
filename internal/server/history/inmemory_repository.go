package history

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository keeps records in a process-local slice. Used by tests
// and by the in-memory repository manager.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []*Record
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now()

	stored := *record
	r.records = append(r.records, &stored)

	return record, nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Record
	for _, record := range r.records {
		if record.UserID == userID {
			found := *record
			out = append(out, &found)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}
