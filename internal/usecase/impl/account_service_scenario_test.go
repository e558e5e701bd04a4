package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mise/config"
	domainerrors "mise/internal/domain/errors"
	"mise/internal/infra/auth"
	"mise/internal/infra/persistence/memory"
	"mise/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScenarioService wires the account service with the real bcrypt hasher,
// the real JWT token service and the in-memory store.
func newScenarioService(t *testing.T) (usecase.AccountUsecase, *config.Config) {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Token = "scenario_test_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Hour}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	service := NewAccountService(AccountServiceParams{
		AccountRepo:  memory.NewAccountRepository(),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, cfg
}

func TestAccountService_RegisterThenAuthenticate(t *testing.T) {
	service, cfg := newScenarioService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:           "Jane Doe",
		Email:          "jane@cafe.com",
		Password:       "secret1",
		RestaurantName: "Jane's Cafe",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@cafe.com", registered.Account.Email)

	// Wrong password is rejected with the uninformative credential error.
	_, err = service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "jane@cafe.com",
		Password: "wrong",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// Correct credentials produce a token bound to the registered account.
	authenticated, err := service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "jane@cafe.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, authenticated.Account.ID)

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	subject, err := tokenService.Verify(authenticated.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, subject)
}

func TestAccountService_EmailNormalizationRoundTrip(t *testing.T) {
	service, _ := newScenarioService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &usecase.RegisterInput{
		Name:           "Sam Operator",
		Email:          "User@Example.com",
		Password:       "secret1",
		RestaurantName: "The Example",
	})
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", registered.Account.Email)

	authenticated, err := service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "user@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.Account.ID, authenticated.Account.ID)
}

func TestAccountService_DuplicateRegistration(t *testing.T) {
	service, _ := newScenarioService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Name:           "Jane Doe",
		Email:          "jane@cafe.com",
		Password:       "secret1",
		RestaurantName: "Jane's Cafe",
	}

	first, err := service.Register(ctx, input)
	require.NoError(t, err)

	// Second registration with the same email fails; the first account is
	// untouched and still authenticates.
	_, err = service.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountExists))

	authenticated, err := service.Authenticate(ctx, &usecase.AuthenticateInput{
		Email:    "jane@cafe.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, first.Account.ID, authenticated.Account.ID)
}
