package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures never reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrSessionExpired = errors.New("session expired")
)

const SessionCookieKey = "session_id"

type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UsernameExists(username string) (bool, error)
}

type SessionStore interface {
	Create(session *models.Session) error
	GetByID(id string) (*models.Session, error)
	Delete(id string) error
	DeleteExpired() error
}

type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
}

func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// NormalizeEmail is applied before every lookup and store so the same
// address never registers twice under different casing or padding.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with the given role. The role comes from the
// registration endpoint, never from client input. An omitted username
// falls back to the local part of the email; when that is taken, the
// smallest free integer suffix is appended (pat, pat1, pat2, ...).
// An explicitly supplied username that collides is an error instead.
func (s *AuthService) Register(email, username, password string, role models.Role) (*models.User, error) {
	email = NormalizeEmail(email)
	username = strings.TrimSpace(username)

	if username == "" {
		derived, err := s.deriveUsername(email)
		if err != nil {
			return nil, err
		}
		username = derived
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) deriveUsername(email string) (string, error) {
	base, _, _ := strings.Cut(email, "@")
	taken, err := s.users.UsernameExists(base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	for n := 1; ; n++ {
		candidate := base + strconv.Itoa(n)
		taken, err := s.users.UsernameExists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// Authenticate verifies email and password and returns the matching
// user. The failure mode is uniform for unknown email and bad
// password.
func (s *AuthService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(NormalizeEmail(email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// LoginSession opens a server-side session for an already
// authenticated user.
func (s *AuthService) LoginSession(user *models.User) (*models.Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:        id,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *AuthService) Logout(sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// ValidateSession resolves a session cookie to the current user. Role
// changes are picked up here because the user row is re-read on every
// request, unlike the JWT path where the role claim is frozen until
// re-authentication.
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.sessions.GetByID(sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		s.sessions.Delete(sessionID)
		return nil, ErrSessionExpired
	}

	return s.users.GetByID(session.UserID)
}

func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) CleanupExpiredSessions() error {
	return s.sessions.DeleteExpired()
}

func generateSessionID() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
