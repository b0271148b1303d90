package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finman-app/finman_backend/internal/apperrors"
	"github.com/finman-app/finman_backend/internal/core/domain"
	portsrepo "github.com/finman-app/finman_backend/internal/core/ports/repositories"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string // insertion order
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.UserID]; exists {
		return fmt.Errorf("%w: user with ID %s already exists", apperrors.ErrDuplicate, user.UserID)
	}
	for _, existing := range r.users {
		if existing.DeletedAt != nil {
			continue
		}
		if existing.Email == user.Email || existing.CPF == user.CPF {
			return fmt.Errorf("%w: user with the same email or CPF already exists", apperrors.ErrDuplicate)
		}
	}
	r.users[user.UserID] = user
	r.order = append(r.order, user.UserID)
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok || user.DeletedAt != nil {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email && user.DeletedAt == nil {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) FindUserByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.CPF == cpf && user.DeletedAt == nil {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	users := []domain.User{}
	skipped := 0
	for _, id := range r.order {
		user := r.users[id]
		if user.DeletedAt != nil {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		if len(users) >= limit {
			break
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.UserID]
	if !ok || existing.DeletedAt != nil {
		return apperrors.ErrNotFound
	}
	r.users[user.UserID] = user
	return nil
}

func (r *UserRepository) MarkUserDeleted(ctx context.Context, userID string, deleterUserID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userID]
	if !ok || user.DeletedAt != nil {
		return apperrors.ErrNotFound
	}
	deletedAt := now
	user.DeletedAt = &deletedAt
	user.LastUpdatedAt = now
	user.LastUpdatedBy = deleterUserID
	r.users[userID] = user
	return nil
}
