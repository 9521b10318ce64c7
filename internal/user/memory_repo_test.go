package user

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_CreateAndGet(t *testing.T) {
	repo := NewMemoryRepo()
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	u := &User{Login: "alice", DisplayName: "Alice", PasswordHash: []byte("h"), PasswordSalt: []byte("s")}
	require.NoError(t, repo.Create(ctx, u))

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, RoleBuyer, u.Role)
	assert.Equal(t, now, u.CreatedAt)

	byLogin, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, *u, byLogin)

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, byLogin, byID)
}

func TestMemoryRepo_KeepsExplicitRole(t *testing.T) {
	repo := NewMemoryRepo()

	u := &User{Login: "root", Role: RoleAdmin}
	require.NoError(t, repo.Create(context.Background(), u))

	assert.Equal(t, RoleAdmin, u.Role)
}

func TestMemoryRepo_Duplicate(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &User{Login: "alice", DisplayName: "First"}))
	err := repo.Create(ctx, &User{Login: "alice", DisplayName: "Second"})

	assert.ErrorIs(t, err, ErrAlreadyExists)
	stored, _ := repo.GetByLogin(ctx, "alice")
	assert.Equal(t, "First", stored.DisplayName)
	assert.Equal(t, 1, repo.Count())
}

func TestMemoryRepo_NotFound(t *testing.T) {
	repo := NewMemoryRepo()

	_, err := repo.GetByLogin(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepo_StoredCopyIsIsolated(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	hash := []byte("digest")
	salt := []byte("salt")
	require.NoError(t, repo.Create(ctx, &User{Login: "alice", PasswordHash: hash, PasswordSalt: salt}))
	hash[0] = 'X'
	salt[0] = 'X'

	stored, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("digest"), stored.PasswordHash)
	assert.Equal(t, []byte("salt"), stored.PasswordSalt)

	stored.PasswordHash[0] = 'Y'
	stored.PasswordSalt[0] = 'Y'

	again, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("digest"), again.PasswordHash)
	assert.Equal(t, []byte("salt"), again.PasswordSalt)

	byID, err := repo.GetByID(ctx, again.ID)
	require.NoError(t, err)
	byID.PasswordSalt[0] = 'Z'
	again, err = repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), again.PasswordSalt)
}

func TestMemoryRepo_ConcurrentCreate(t *testing.T) {
	repo := NewMemoryRepo()

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(context.Background(), &User{Login: "alice"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			if !errors.Is(err, ErrAlreadyExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, repo.Count())
}
