package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jhaabhiiishek/finmanBackend/pkg/config"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain"
	"github.com/jhaabhiiishek/finmanBackend/pkg/domain/account"
	"github.com/jhaabhiiishek/finmanBackend/pkg/dto"
	"github.com/jhaabhiiishek/finmanBackend/pkg/repository"
	"github.com/jhaabhiiishek/finmanBackend/pkg/utils"
)

// Claims are the JWT claims issued on login. The subject is the account email.
type Claims struct {
	UID  string       `json:"uid"`
	Role account.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the authenticated caller of a request.
type Identity struct {
	AccountID uuid.UUID
	Email     string
	Role      account.Role
}

func (i Identity) IsAdmin() bool { return i.Role == account.RoleAdmin }

// CanActOn reports whether the caller may read or change the account
// registered under email. Admins may act on any account.
func (i Identity) CanActOn(email string) bool {
	return i.IsAdmin() || utils.NormalizeEmail(email) == i.Email
}

type Strategy interface {
	Login(ctx context.Context, email, password string) (*dto.AccountRead, error)
	GenerateToken(ctx context.Context, a *dto.AccountRead) (string, error)
	Identity(token *jwt.Token) (Identity, error)
}

type Service struct {
	uow      repository.UnitOfWork
	strategy Strategy
	logger   *slog.Logger
}

func New(
	uow repository.UnitOfWork,
	strategy Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, strategy: strategy, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(uow, NewJWTStrategy(uow, cfg, logger), logger)
}

func (s *Service) CheckPasswordHash(password, hash string) bool {
	return utils.CheckPasswordHash(password, hash)
}

func (s *Service) ValidEmail(email string) bool {
	return utils.IsEmail(utils.NormalizeEmail(email))
}

// Login verifies credentials. Unknown emails and wrong passwords both
// yield domain.ErrInvalidCredentials.
func (s *Service) Login(
	ctx context.Context,
	email, password string,
) (a *dto.AccountRead, err error) {
	log := s.logger.With("context", "Login")
	log.Debug("Login called", "email", email)
	a, err = s.strategy.Login(ctx, email, password)
	if err != nil {
		log.Warn("Login failed", "email", email, "error", err)
		return
	}
	log.Info("Login successful", "accountID", a.ID)
	return
}

func (s *Service) GenerateToken(
	ctx context.Context,
	a *dto.AccountRead,
) (string, error) {
	log := s.logger.With("accountID", a.ID)
	token, err := s.strategy.GenerateToken(ctx, a)
	if err != nil {
		log.Error("GenerateToken failed", "error", err)
		return "", err
	}
	log.Debug("GenerateToken successful")
	return token, nil
}

// Authenticate logs in and issues a token in one step.
func (s *Service) Authenticate(
	ctx context.Context,
	email, password string,
) (a *dto.AccountRead, token string, err error) {
	a, err = s.Login(ctx, email, password)
	if err != nil {
		return
	}
	token, err = s.GenerateToken(ctx, a)
	return
}

// CurrentIdentity extracts the caller from a verified token.
func (s *Service) CurrentIdentity(token *jwt.Token) (Identity, error) {
	id, err := s.strategy.Identity(token)
	if err != nil {
		s.logger.Warn("CurrentIdentity failed", "error", err)
	}
	return id, err
}

// JWTStrategy authenticates against stored bcrypt hashes and issues HS256 tokens.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger}
}

// burnCompare runs a bcrypt comparison against a throwaway hash so unknown
// emails take as long as wrong passwords.
func (s *JWTStrategy) burnCompare(password string) {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = utils.HashPassword(uuid.NewString())
	})
	_ = utils.CheckPasswordHash(password, s.dummyHash)
}

func (s *JWTStrategy) Login(
	ctx context.Context,
	email, password string,
) (a *dto.AccountRead, err error) {
	email = utils.NormalizeEmail(email)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return fmt.Errorf("failed to get account repository: %w", err)
		}
		a, err = repo.FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		return nil, err
	}
	if a == nil {
		s.burnCompare(password)
		return nil, domain.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, a.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}
	return a, nil
}

func (s *JWTStrategy) GenerateToken(
	ctx context.Context,
	a *dto.AccountRead,
) (string, error) {
	now := time.Now()
	claims := &Claims{
		UID:  a.ID.String(),
		Role: a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.Expiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// ErrMalformedToken is returned when a verified token lacks the expected claims.
var ErrMalformedToken = fmt.Errorf("malformed token claims: %w", domain.ErrUnauthorized)

func (s *JWTStrategy) Identity(token *jwt.Token) (Identity, error) {
	if token == nil {
		return Identity{}, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return Identity{}, ErrMalformedToken
	}
	uid, err := uuid.Parse(claims.UID)
	if err != nil {
		return Identity{}, errors.Join(ErrMalformedToken, err)
	}
	if claims.Subject == "" || !claims.Role.Valid() {
		return Identity{}, ErrMalformedToken
	}
	return Identity{
		AccountID: uid,
		Email:     utils.NormalizeEmail(claims.Subject),
		Role:      claims.Role,
	}, nil
}
