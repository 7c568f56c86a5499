package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/voxlate/voxlate/internal/common"
)

// InMemoryRepository keeps users in a process-local map. Used by tests and
// by the in-memory repository manager.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byName map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byName: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()

	stored := *user
	r.byName[user.UserName] = &stored

	return user, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *user
	return &found, nil
}
