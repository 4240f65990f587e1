package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
)

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) UsernameExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(session *models.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionStore) GetByID(id string) (*models.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

func newAuthService(users *MockUserStore, sessions *MockSessionStore) *AuthService {
	return NewAuthService(users, sessions, 24*time.Hour)
}

func TestAuthService_Register_NormalizesEmailAndDerivesUsername(t *testing.T) {
	users := &MockUserStore{}
	sessions := &MockSessionStore{}
	svc := newAuthService(users, sessions)

	users.On("UsernameExists", "pat").Return(false, nil)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("  Pat@Example.COM ", "", "supersecret", models.RoleVoyager)

	assert.NoError(t, err)
	assert.Equal(t, "pat@example.com", user.Email)
	assert.Equal(t, "pat", user.Username)
	assert.Equal(t, models.RoleVoyager, user.Role)

	// Plaintext is never stored; the hash must verify.
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))

	users.AssertExpectations(t)
}

func TestAuthService_Register_UsernameSuffixOnCollision(t *testing.T) {
	users := &MockUserStore{}
	svc := newAuthService(users, &MockSessionStore{})

	users.On("UsernameExists", "pat").Return(true, nil)
	users.On("UsernameExists", "pat1").Return(true, nil)
	users.On("UsernameExists", "pat2").Return(false, nil)
	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("pat@example.com", "", "supersecret", models.RoleManager)

	assert.NoError(t, err)
	assert.Equal(t, "pat2", user.Username)
	users.AssertExpectations(t)
}

func TestAuthService_Register_ExplicitUsernameKept(t *testing.T) {
	users := &MockUserStore{}
	svc := newAuthService(users, &MockSessionStore{})

	users.On("Create", mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register("pat@example.com", "captain_pat", "supersecret", models.RoleAdmin)

	assert.NoError(t, err)
	assert.Equal(t, "captain_pat", user.Username)
	// No fallback lookups for an explicit username.
	users.AssertNotCalled(t, "UsernameExists", mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	users := &MockUserStore{}
	svc := newAuthService(users, &MockSessionStore{})

	users.On("Create", mock.AnythingOfType("*models.User")).Return(repository.ErrDuplicateEmail)

	_, err := svc.Register("pat@example.com", "pat", "supersecret", models.RoleVoyager)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestAuthService_Authenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &models.User{
		ID:           3,
		Email:        "pat@example.com",
		Username:     "pat",
		PasswordHash: string(hash),
		Role:         models.RoleHeadCook,
	}

	t.Run("success with unnormalized email", func(t *testing.T) {
		users := &MockUserStore{}
		svc := newAuthService(users, &MockSessionStore{})
		users.On("GetByEmail", "pat@example.com").Return(stored, nil)

		user, err := svc.Authenticate(" PAT@example.com ", "rightpass")

		assert.NoError(t, err)
		assert.Equal(t, uint(3), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &MockUserStore{}
		svc := newAuthService(users, &MockSessionStore{})
		users.On("GetByEmail", "pat@example.com").Return(stored, nil)

		_, err := svc.Authenticate("pat@example.com", "wrongpass")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email reports same error as wrong password", func(t *testing.T) {
		users := &MockUserStore{}
		svc := newAuthService(users, &MockSessionStore{})
		users.On("GetByEmail", "nobody@example.com").Return(nil, repository.ErrNotFound)

		_, err := svc.Authenticate("nobody@example.com", "whatever")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Sessions(t *testing.T) {
	user := &models.User{ID: 5, Email: "pat@example.com", Username: "pat", Role: models.RoleVoyager}

	t.Run("login creates session with ttl", func(t *testing.T) {
		sessions := &MockSessionStore{}
		svc := newAuthService(&MockUserStore{}, sessions)

		var created *models.Session
		sessions.On("Create", mock.AnythingOfType("*models.Session")).Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.Session)
		}).Return(nil)

		session, err := svc.LoginSession(user)

		assert.NoError(t, err)
		assert.Len(t, session.ID, 64)
		assert.Equal(t, uint(5), created.UserID)
		assert.WithinDuration(t, time.Now().Add(24*time.Hour), created.ExpiresAt, time.Minute)
	})

	t.Run("expired session is deleted and rejected", func(t *testing.T) {
		sessions := &MockSessionStore{}
		svc := newAuthService(&MockUserStore{}, sessions)

		sessions.On("GetByID", "stale").Return(&models.Session{
			ID:        "stale",
			UserID:    5,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)
		sessions.On("Delete", "stale").Return(nil)

		_, err := svc.ValidateSession("stale")

		assert.ErrorIs(t, err, ErrSessionExpired)
		sessions.AssertCalled(t, "Delete", "stale")
	})

	t.Run("unknown session rejected", func(t *testing.T) {
		sessions := &MockSessionStore{}
		svc := newAuthService(&MockUserStore{}, sessions)
		sessions.On("GetByID", "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.ValidateSession("missing")

		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("valid session resolves current user", func(t *testing.T) {
		users := &MockUserStore{}
		sessions := &MockSessionStore{}
		svc := newAuthService(users, sessions)

		sessions.On("GetByID", "live").Return(&models.Session{
			ID:        "live",
			UserID:    5,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
		users.On("GetByID", uint(5)).Return(user, nil)

		got, err := svc.ValidateSession("live")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A@X.Com", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"already@fine.io", "already@fine.io"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
