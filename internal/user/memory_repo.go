package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps users in process memory. It backs STORE=memory and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	byLogin map[string]User
	byID    map[string]string // id -> login
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byLogin: make(map[string]User),
		byID:    make(map[string]string),
		now:     time.Now,
	}
}

func (r *MemoryRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byLogin[u.Login]; exists {
		return ErrAlreadyExists
	}

	u.ID = uuid.New().String()
	if u.Role == "" {
		u.Role = RoleBuyer
	}
	u.CreatedAt = r.now()
	u.UpdatedAt = u.CreatedAt

	r.byLogin[u.Login] = detach(*u)
	r.byID[u.ID] = u.Login
	return nil
}

func (r *MemoryRepo) GetByLogin(_ context.Context, login string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byLogin[login]
	if !ok {
		return User{}, ErrNotFound
	}
	return detach(u), nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (User, error) {
	r.mu.RLock()
	login, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return User{}, ErrNotFound
	}
	return r.GetByLogin(ctx, login)
}

// Count returns how many users are stored.
func (r *MemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byLogin)
}

// detach copies the credential slices so callers never share backing arrays
// with the map.
func detach(u User) User {
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	u.PasswordSalt = append([]byte(nil), u.PasswordSalt...)
	return u
}
