package memory

import (
	"context"
	"sync"

	"github.com/xavierca1/marketmind/internal/entity"
)

// UserRepository keeps the fixed user set; only Status ever changes.
type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository(seed []entity.User) *UserRepository {
	users := make([]entity.User, len(seed))
	copy(users, seed)
	return &UserRepository{users: users}
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) Toggle(ctx context.Context, id int) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Toggle()
			updated := r.users[i]
			return &updated, nil
		}
	}
	return nil, entity.ErrUserNotFound
}
