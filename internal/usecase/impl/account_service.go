// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"

	"mise/internal/domain/entity"
	domainerrors "mise/internal/domain/errors"
	"mise/internal/domain/repository"
	"mise/internal/domain/service"
	"mise/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minPasswordLength is enforced on the plaintext before hashing.
const minPasswordLength = 6

// emailPattern accepts basic local@domain.tld addresses.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// Register orchestrates the complete account registration process.
// Normalization and validation run here regardless of what the delivery
// layer already checked, so non-HTTP callers get the same contract.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	input.Normalize()
	name, email, restaurantName := input.Name, input.Email, input.RestaurantName

	if err := validateRegisterInput(name, email, input.Password, restaurantName); err != nil {
		srv.logger.Warn("Registration input validation failed", slog.String("email", email))

		return nil, err
	}

	srv.logger.Info("Starting account registration", slog.String("email", email))

	// Service-level existence check. This is an optimization for a clean
	// error; the store's unique constraint below is the correctness boundary
	// when two registrations race.
	_, err := srv.accountRepo.FindByEmail(ctx, email, false)
	if err == nil {
		return nil, domainerrors.ErrAccountExists.WrapMessage("account registration failed")
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.logger.Error("Failed to check existing account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newAccount := &entity.Account{
		Name:           name,
		Email:          email,
		RestaurantName: restaurantName,
		PasswordHash:   hashedPassword,
	}

	if err := srv.accountRepo.Insert(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the check/insert race; same outcome as the existence check.
			return nil, domainerrors.ErrAccountExists.WrapMessage("account registration failed")
		}
		srv.logger.Error("Failed to insert account", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to insert account during registration")
	}

	token, err := srv.tokenService.Issue(newAccount.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("accountID", newAccount.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after registration")
	}

	srv.logger.Debug("Account registered", slog.Any("accountID", newAccount.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: toAccountSummary(newAccount),
	}, nil
}

// Authenticate orchestrates the credential verification process.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthOutput, error) {
	input.Normalize()
	email := input.Email

	srv.logger.Debug("Starting authentication", slog.String("email", email))

	// The only read path that includes the stored hash.
	account, err := srv.accountRepo.FindByEmail(ctx, email, true)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Same error as a password mismatch so callers cannot probe
			// which emails are registered.
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
		}
		srv.logger.Error("Failed to load account for authentication", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load account for authentication")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.logger.Warn("Authentication failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("authentication failed")
	}

	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		srv.logger.Error("Failed to issue session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token after authentication")
	}

	srv.logger.Debug("Account authenticated", slog.Any("accountID", account.ID))

	return &usecase.AuthOutput{
		Token:   token,
		Account: toAccountSummary(account),
	}, nil
}

// validateRegisterInput checks every field and reports all failures together,
// one entry per field, so the caller can fix them in a single round trip.
func validateRegisterInput(name, email, password, restaurantName string) error {
	var fields []domainerrors.FieldError

	if name == "" {
		fields = append(fields, domainerrors.FieldError{Field: "name", Reason: "name is required"})
	}

	switch {
	case email == "":
		fields = append(fields, domainerrors.FieldError{Field: "email", Reason: "email is required"})
	case !emailPattern.MatchString(email):
		fields = append(fields, domainerrors.FieldError{Field: "email", Reason: "email must be a valid address"})
	}

	switch {
	case password == "":
		fields = append(fields, domainerrors.FieldError{Field: "password", Reason: "password is required"})
	case len(password) < minPasswordLength:
		fields = append(fields, domainerrors.FieldError{Field: "password", Reason: "password must be at least 6 characters"})
	}

	if restaurantName == "" {
		fields = append(fields, domainerrors.FieldError{Field: "restaurantName", Reason: "restaurantName is required"})
	}

	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

func toAccountSummary(account *entity.Account) *usecase.AccountSummary {
	return &usecase.AccountSummary{
		ID:             account.ID,
		Name:           account.Name,
		Email:          account.Email,
		RestaurantName: account.RestaurantName,
	}
}
