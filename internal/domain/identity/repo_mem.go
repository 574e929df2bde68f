package identity

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemRepo is the in-process user store. Email uniqueness is enforced under
// the store mutex so concurrent registrations cannot both win.
type MemRepo struct {
	mu    sync.RWMutex
	users map[string]*User
	order []string // preserve insertion order
}

func NewMemRepo() *MemRepo {
	return &MemRepo{users: make(map[string]*User)}
}

func (r *MemRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range r.order {
		if r.users[id].Email == u.Email {
			return ErrDuplicateEmail
		}
	}

	u.ID = uuid.New().String()
	u.CreatedAt = time.Now().UTC()

	stored := *u
	r.users[u.ID] = &stored
	r.order = append(r.order, u.ID)
	return nil
}

func (r *MemRepo) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *MemRepo) FindByCredentials(_ context.Context, email, password string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Exact string equality on both fields, in insertion order.
	for _, id := range r.order {
		u := r.users[id]
		if u.Email == email && u.Password == password {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrInvalidCredentials
}
