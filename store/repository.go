//go:generate mockgen -source=$GOFILE -destination=mock_$GOFILE -package=$GOPACKAGE
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/thinglist-app/backend/domain"
)

// ErrNotFound is returned when a user is missing so handlers can map
// it to a precondition-failed response.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicateEmail is returned by AddUser when the email is taken.
var ErrDuplicateEmail = errors.New("store: email already registered")

// ContributionRepository is the append-only item store backing the
// inventory screens. List returns a snapshot in arrival order; there
// is no update or delete, only Clear.
type ContributionRepository interface {
	Add(ctx context.Context, c domain.Contribution) error
	List(ctx context.Context) ([]domain.Contribution, error)
	Clear(ctx context.Context) error
}

// ContributionMemoryRepository keeps contributions for the process
// lifetime only. Mutations are mutex-guarded so catalog rebuilds never
// observe a partially appended entry.
type ContributionMemoryRepository struct {
	mu    sync.RWMutex
	items []domain.Contribution
}

func NewContributionRepository() ContributionRepository {
	return &ContributionMemoryRepository{}
}

func (r *ContributionMemoryRepository) Add(ctx context.Context, c domain.Contribution) error {
	if c == (domain.Contribution{}) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, c)
	return nil
}

func (r *ContributionMemoryRepository) List(ctx context.Context) ([]domain.Contribution, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// return a copy so callers don't accidentally modify internal state
	snapshot := make([]domain.Contribution, len(r.items))
	copy(snapshot, r.items)
	return snapshot, nil
}

func (r *ContributionMemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

type UserRepository interface {
	AddUser(ctx context.Context, user domain.User) (int64, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type UserMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]domain.User
}

func NewUserRepository() UserRepository {
	return &UserMemoryRepository{nextID: 1, users: map[int64]domain.User{}}
}

func (r *UserMemoryRepository) AddUser(ctx context.Context, user domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, ErrDuplicateEmail
		}
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *UserMemoryRepository) GetUser(ctx context.Context, id int64) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return domain.User{}, ErrNotFound
	}
	return user, nil
}

func (r *UserMemoryRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, ErrNotFound
}
