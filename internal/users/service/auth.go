package service

import (
	"context"
	"errors"
	"time"

	"github.com/lumenasoft/usersvc/internal/users/domain"
	"github.com/lumenasoft/usersvc/internal/users/store"
	"github.com/lumenasoft/usersvc/pkg/cryptox"
	"github.com/lumenasoft/usersvc/pkg/jwtx"
	"github.com/lumenasoft/usersvc/pkg/userapi"
)

// TokenPair is an access/refresh token pair bound to a user id.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService implements registration, login, refresh, and identity lookup.
// Registration delegates to UserService so both creation paths share the
// exact same validation and uniqueness rules.
type AuthService struct {
	Users  *UserService
	Store  store.Store
	Signer *jwtx.HS256

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Register creates the account and issues a token pair for it.
func (s *AuthService) Register(ctx context.Context, p *userapi.UserPayload) (domain.User, TokenPair, error) {
	u, err := s.Users.CreateUser(ctx, p)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	pair, err := s.issueTokenPair(u.ID)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	return u, pair, nil
}

// Login verifies credentials and the active flag, then issues tokens. The
// unknown-email and wrong-password cases return the same error so the
// response does not leak which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, TokenPair, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, TokenPair{}, err
	}

	if cryptox.VerifyPassword(password, u.PasswordHash) != nil {
		return domain.User{}, TokenPair{}, ErrInvalidCredentials
	}

	if !u.IsActive {
		return domain.User{}, TokenPair{}, ErrUserInactive
	}

	pair, err := s.issueTokenPair(u.ID)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	return u, pair, nil
}

// Refresh mints a new access token for the subject of a refresh token,
// provided the user still exists and is active.
func (s *AuthService) Refresh(ctx context.Context, userID int64) (string, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFoundOrInactive
		}
		return "", err
	}
	if !u.IsActive {
		return "", ErrUserNotFoundOrInactive
	}

	return s.Signer.Sign(jwtx.NewClaims(
		u.ID, jwtx.TokenTypeAccess, s.issuer(), s.AccessTTL, time.Now().UTC(),
	))
}

// CurrentUser resolves the authenticated identity to a user record.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func (s *AuthService) issueTokenPair(userID int64) (TokenPair, error) {
	now := time.Now().UTC()

	access, err := s.Signer.Sign(jwtx.NewClaims(
		userID, jwtx.TokenTypeAccess, s.issuer(), s.AccessTTL, now,
	))
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := s.Signer.Sign(jwtx.NewClaims(
		userID, jwtx.TokenTypeRefresh, s.issuer(), s.RefreshTTL, now,
	))
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) issuer() string {
	return s.Signer.Issuer()
}
