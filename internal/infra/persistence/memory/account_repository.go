// Package memory provides an in-memory AccountRepository used by tests and
// local development. It enforces the same email uniqueness contract as the
// PostgreSQL implementation.
package memory

import (
	"context"
	"sync"
	"time"

	"mise/internal/domain/entity"
	"mise/internal/domain/repository"

	"github.com/google/uuid"
)

type accountRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.Account
	nowFunc func() time.Time
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		byEmail: make(map[string]*entity.Account),
		nowFunc: time.Now,
	}
}

func (repo *accountRepository) FindByEmail(_ context.Context, email string, includeHash bool) (*entity.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	stored, ok := repo.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	account := *stored
	if !includeHash {
		account.PasswordHash = ""
	}

	return &account, nil
}

func (repo *accountRepository) Insert(_ context.Context, account *entity.Account) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.byEmail[account.Email]; ok {
		return repository.ErrDuplicateEmail
	}

	account.ID = uuid.New()
	account.CreatedAt = repo.nowFunc()
	account.UpdatedAt = account.CreatedAt

	stored := *account
	repo.byEmail[account.Email] = &stored

	return nil
}
