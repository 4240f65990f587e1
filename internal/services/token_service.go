package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
)

// ErrInvalidToken covers malformed, expired, wrong-type and already
// consumed tokens alike; the boundary only ever reports 401 for any of
// them.
var ErrInvalidToken = errors.New("invalid or expired token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims are what an access token carries. Identity fields are baked
// in so authorization never re-queries the user store per request; the
// flip side is that a role change only takes effect once the user
// authenticates again.
type Claims struct {
	UserID    uint        `json:"user_id"`
	Username  string      `json:"username,omitempty"`
	Email     string      `json:"email,omitempty"`
	Role      models.Role `json:"role,omitempty"`
	TokenType string      `json:"token_type"`
	jwt.RegisteredClaims
}

type RefreshTokenStore interface {
	Create(token *models.RefreshToken) error
	Consume(jti string) error
	DeleteExpired() error
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenService struct {
	users      UserStore
	tokens     RefreshTokenStore
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(users UserStore, tokens RefreshTokenStore, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		users:      users,
		tokens:     tokens,
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints an access/refresh token pair for the user. The
// refresh token's JTI is recorded so rotation can consume it exactly
// once.
func (s *TokenService) IssuePair(user *models.User) (*TokenPair, error) {
	now := time.Now()

	access, err := s.sign(Claims{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	})
	if err != nil {
		return nil, err
	}

	jti := uuid.NewString()
	expiresAt := now.Add(s.refreshTTL)
	refresh, err := s.sign(Claims{
		UserID:    user.ID,
		TokenType: tokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.tokens.Create(&models.RefreshToken{
		JTI:       jti,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseAccess validates an access token and returns the identity it
// carries.
func (s *TokenService) ParseAccess(raw string) (*models.Identity, error) {
	claims, err := s.parse(raw)
	if err != nil || claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return &models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// Refresh rotates a refresh token: the presented token is consumed and
// a brand new pair is issued. Consuming is a guarded single-row update
// in the store, so a replayed refresh token is rejected — there is
// never a moment with two valid refresh tokens for the same login.
// The new access token is built from the stored user, picking up any
// role change since the last issue.
func (s *TokenService) Refresh(raw string) (*TokenPair, error) {
	claims, err := s.parse(raw)
	if err != nil || claims.TokenType != tokenTypeRefresh || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	if err := s.tokens.Consume(claims.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.IssuePair(user)
}

func (s *TokenService) CleanupExpired() error {
	return s.tokens.DeleteExpired()
}

func (s *TokenService) sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
