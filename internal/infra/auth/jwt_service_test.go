package auth

import (
	"testing"
	"time"

	"mise/config"
	domainerrors "mise/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{TokenTTL: ttl}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig(24 * time.Hour))
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	verifiedID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, verifiedID)

	assert.Equal(t, 24*time.Hour, svc.TokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Token = "test_token_secret_key_very_long_for_testing"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.TokenDuration())
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig(24 * time.Hour))
	require.NoError(t, err)

	_, err = svc.Verify("clearly-not-a-jwt-token")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testTokenConfig(24 * time.Hour))
	require.NoError(t, err)

	otherCfg := testTokenConfig(24 * time.Hour)
	otherCfg.SecretKey.Token = "another_secret_entirely_for_testing_purposes"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// A mis-signed token fails with the same error as a malformed one.
	_, err = verifier.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// A negative TTL mints a token that is already past its expiry.
	svc, err := NewJWTService(testTokenConfig(-time.Minute))
	require.NoError(t, err)
	// TokenTTL <= 0 falls back to the default, so build the service directly.
	expired := &jwtService{
		secret:   []byte("test_token_secret_key_very_long_for_testing"),
		tokenTTL: -time.Minute,
	}

	token, err := expired.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_TokenBoundToSubject(t *testing.T) {
	svc, err := NewJWTService(testTokenConfig(time.Hour))
	require.NoError(t, err)

	first := uuid.New()
	second := uuid.New()

	firstToken, err := svc.Issue(first)
	require.NoError(t, err)
	secondToken, err := svc.Issue(second)
	require.NoError(t, err)

	firstID, err := svc.Verify(firstToken)
	require.NoError(t, err)
	secondID, err := svc.Verify(secondToken)
	require.NoError(t, err)

	assert.Equal(t, first, firstID)
	assert.Equal(t, second, secondID)
	assert.NotEqual(t, firstID, secondID)
}
