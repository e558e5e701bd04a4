package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"mise/internal/domain/entity"
	"mise/internal/usecase"

	"github.com/google/uuid"
)

// stubAccountRepo is a scriptable AccountRepository for unit tests.
type stubAccountRepo struct {
	findAccount *entity.Account
	findErr     error
	insertErr   error

	inserted     *entity.Account
	findCalls    int
	includeHash  bool
	requestedFor string
}

func (s *stubAccountRepo) FindByEmail(_ context.Context, email string, includeHash bool) (*entity.Account, error) {
	s.findCalls++
	s.includeHash = includeHash
	s.requestedFor = email

	if s.findErr != nil {
		return nil, s.findErr
	}

	return s.findAccount, nil
}

func (s *stubAccountRepo) Insert(_ context.Context, account *entity.Account) error {
	if s.insertErr != nil {
		return s.insertErr
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	s.inserted = account

	return nil
}

// stubHasher hashes by prefixing so tests can assert without bcrypt cost.
type stubHasher struct {
	hashErr error
}

func (s *stubHasher) Hash(password string) (string, error) {
	if s.hashErr != nil {
		return "", s.hashErr
	}

	return "hashed:" + password, nil
}

func (s *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// stubTokenService issues predictable tokens.
type stubTokenService struct {
	issueErr error
	issued   []uuid.UUID
}

func (s *stubTokenService) Issue(accountID uuid.UUID) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}
	s.issued = append(s.issued, accountID)

	return "token-for-" + accountID.String(), nil
}

func (s *stubTokenService) Verify(string) (uuid.UUID, error) {
	return uuid.Nil, nil
}

func (s *stubTokenService) TokenDuration() time.Duration {
	return 24 * time.Hour
}

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service usecase.AccountUsecase
	repo    *stubAccountRepo
	hasher  *stubHasher
	tokens  *stubTokenService
}

func createTestAccountService(repo *stubAccountRepo) accountServiceFixtures {
	hasher := &stubHasher{}
	tokens := &stubTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  repo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service: service,
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
	}
}
