package auth_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/internal/fixtures/mocks"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	authsvc "github.com/jhaabhiiishek/finmanBackend/pkg/service/auth"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	utils.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

var jwtCfg = &config.Jwt{Secret: "test-secret", Expiry: time.Hour}

func newAccountRead(t *testing.T, email, password string, role account.Role) *dto.AccountRead {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &dto.AccountRead{
		ID:             uuid.New(),
		Name:           "Alice",
		Email:          email,
		HashedPassword: hash,
		Role:           role,
	}
}

func setupLogin(t *testing.T, email string, found *dto.AccountRead, repoErr error) *authsvc.Service {
	t.Helper()
	uow := mocks.NewMockUnitOfWork(t)
	accRepo := mocks.NewMockAccountRepository(t)
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Once()
	uow.EXPECT().AccountRepository().Return(accRepo, nil).Once()
	accRepo.EXPECT().FindByEmail(mock.Anything, email).Return(found, repoErr).Once()
	return authsvc.NewWithJWT(uow, jwtCfg, slog.Default())
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	acc := newAccountRead(t, "alice@example.com", "secret", account.RoleUser)
	svc := setupLogin(t, "alice@example.com", acc, nil)

	got, err := svc.Login(context.Background(), "  Alice@Example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	acc := newAccountRead(t, "alice@example.com", "secret", account.RoleUser)
	svc := setupLogin(t, "alice@example.com", acc, nil)

	got, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, got)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc := setupLogin(t, "ghost@example.com", nil, nil)

	got, err := svc.Login(context.Background(), "ghost@example.com", "secret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, got)
}

func TestLogin_RepositoryError(t *testing.T) {
	t.Parallel()
	dbErr := errors.New("db down")
	svc := setupLogin(t, "alice@example.com", nil, dbErr)

	_, err := svc.Login(context.Background(), "alice@example.com", "secret")
	require.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()
	acc := newAccountRead(t, "alice@example.com", "secret", account.RoleAdmin)
	svc := setupLogin(t, "alice@example.com", acc, nil)

	got, token, err := svc.Authenticate(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, acc.ID, got.ID)

	parsed, err := jwt.ParseWithClaims(token, &authsvc.Claims{}, func(*jwt.Token) (any, error) {
		return []byte(jwtCfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)

	claims := parsed.Claims.(*authsvc.Claims)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, acc.ID.String(), claims.UID)
	assert.Equal(t, account.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	id, err := svc.CurrentIdentity(parsed)
	require.NoError(t, err)
	assert.Equal(t, authsvc.Identity{AccountID: acc.ID, Email: "alice@example.com", Role: account.RoleAdmin}, id)
}

func TestGenerateToken_RejectedWithOtherSecret(t *testing.T) {
	t.Parallel()
	strategy := authsvc.NewJWTStrategy(nil, jwtCfg, slog.Default())
	token, err := strategy.GenerateToken(context.Background(), &dto.AccountRead{
		ID: uuid.New(), Email: "bob@example.com", Role: account.RoleUser,
	})
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &authsvc.Claims{}, func(*jwt.Token) (any, error) {
		return []byte("another-secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestCurrentIdentity_Invalid(t *testing.T) {
	t.Parallel()
	svc := authsvc.NewWithJWT(nil, jwtCfg, slog.Default())

	tests := []struct {
		name  string
		token *jwt.Token
	}{
		{"nil token", nil},
		{"map claims", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@b.co"})},
		{"bad uid", jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
			UID: "nope", Role: account.RoleUser,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.co"},
		})},
		{"missing subject", jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
			UID: uuid.NewString(), Role: account.RoleUser,
		})},
		{"unknown role", jwt.NewWithClaims(jwt.SigningMethodHS256, &authsvc.Claims{
			UID: uuid.NewString(), Role: "root",
			RegisteredClaims: jwt.RegisteredClaims{Subject: "a@b.co"},
		})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CurrentIdentity(tc.token)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestIdentity_CanActOn(t *testing.T) {
	t.Parallel()
	user := authsvc.Identity{Email: "alice@example.com", Role: account.RoleUser}
	admin := authsvc.Identity{Email: "root@example.com", Role: account.RoleAdmin}

	assert.True(t, user.CanActOn("alice@example.com"))
	assert.True(t, user.CanActOn(" ALICE@example.com"))
	assert.False(t, user.CanActOn("bob@example.com"))
	assert.True(t, admin.CanActOn("bob@example.com"))
	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}

func TestValidEmail(t *testing.T) {
	t.Parallel()
	svc := authsvc.NewWithJWT(nil, jwtCfg, slog.Default())
	assert.True(t, svc.ValidEmail("fixtures@example.com"))
	assert.False(t, svc.ValidEmail("not-an-email"))
}
