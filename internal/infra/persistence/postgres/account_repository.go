package postgres

import (
	"context"

	"mise/internal/domain/entity"
	domainerrors "mise/internal/domain/errors"
	"mise/internal/domain/repository"
	"mise/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its lowercase email address.
// The password hash column is omitted from the select unless includeHash is
// set, so it cannot leak through ordinary read paths.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string, includeHash bool) (*entity.Account, error) {
	query := repo.db.WithContext(ctx).Where("email = ?", email)
	if !includeHash {
		query = query.Omit("password_hash")
	}

	var accountM model.AccountModel
	if err := query.First(&accountM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Insert persists a new account entity to the database. The unique index on
// email is the authoritative duplicate guard; a violation maps to
// repository.ErrDuplicateEmail.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewStoreError(err, "failed to insert account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		RestaurantName: data.RestaurantName,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		RestaurantName: data.RestaurantName,
		PasswordHash:   data.PasswordHash,
	}
}
