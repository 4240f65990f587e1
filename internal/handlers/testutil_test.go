package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/middleware"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/validators"
)

// In-memory stores standing in for the gorm repositories. They mirror
// the repository package's contract, including its sentinel errors, so
// handlers and services run unmodified on top of them.

type memUserStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uint]*models.User{}}
}

func (s *memUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) GetByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memUserStore) UsernameExists(username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*models.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]*models.Session{}}
}

func (s *memSessionStore) Create(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *memSessionStore) GetByID(id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		copied := *sess
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memSessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *memSessionStore) DeleteExpired() error { return nil }

type memRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newMemRefreshStore() *memRefreshStore {
	return &memRefreshStore{tokens: map[string]*models.RefreshToken{}}
}

func (s *memRefreshStore) Create(token *models.RefreshToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *token
	s.tokens[token.JTI] = &copied
	return nil
}

func (s *memRefreshStore) Consume(jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[jti]
	if !ok || token.Used || time.Now().After(token.ExpiresAt) {
		return repository.ErrNotFound
	}
	token.Used = true
	return nil
}

func (s *memRefreshStore) DeleteExpired() error { return nil }

type memItemStore struct {
	mu     sync.Mutex
	nextID uint
	items  map[uint]*models.Item
}

func newMemItemStore() *memItemStore {
	return &memItemStore{items: map[uint]*models.Item{}}
}

func (s *memItemStore) Create(item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	item.ID = s.nextID
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *memItemStore) GetByID(id uint) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item, ok := s.items[id]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *memItemStore) List(category models.Category) ([]*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Item
	for _, item := range s.items {
		if category != "" && item.Category != category {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memItemStore) Update(item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[item.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *memItemStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

type memBookingStore struct {
	mu       sync.Mutex
	nextID   uint
	bookings []*models.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{}
}

func (s *memBookingStore) Create(booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	booking.ID = s.nextID
	copied := *booking
	s.bookings = append(s.bookings, &copied)
	return nil
}

func (s *memBookingStore) ListForOwner(userID uint) ([]*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *memBookingStore) ListAll() ([]*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Booking
	for _, b := range s.bookings {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (s *memBookingStore) ListByType(t models.BookingType) ([]*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Booking
	for _, b := range s.bookings {
		if b.Type == t {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memContactStore struct {
	mu       sync.Mutex
	messages []*models.ContactMessage
}

func (s *memContactStore) Create(msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *msg
	s.messages = append(s.messages, &copied)
	return nil
}

var registerValidatorsOnce sync.Once

type testServer struct {
	router   *gin.Engine
	users    *memUserStore
	sessions *memSessionStore
	refresh  *memRefreshStore
	items    *memItemStore
	bookings *memBookingStore
	contacts *memContactStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	registerValidatorsOnce.Do(validators.Register)

	ts := &testServer{
		users:    newMemUserStore(),
		sessions: newMemSessionStore(),
		refresh:  newMemRefreshStore(),
		items:    newMemItemStore(),
		bookings: newMemBookingStore(),
		contacts: &memContactStore{},
	}

	authSvc := services.NewAuthService(ts.users, ts.sessions, 24*time.Hour)
	tokenSvc := services.NewTokenService(ts.users, ts.refresh, "test-secret", time.Hour, 24*time.Hour)
	catalogSvc := services.NewCatalogService(ts.items)
	bookingSvc := services.NewBookingService(ts.bookings)

	ts.router = gin.New()
	RegisterRoutes(ts.router,
		NewAuthHandler(authSvc, tokenSvc),
		NewItemHandler(catalogSvc),
		NewBookingHandler(bookingSvc),
		NewContactHandler(ts.contacts),
		middleware.Authenticate(tokenSvc, authSvc),
	)
	return ts
}

// request performs one HTTP round trip against the in-process router.
// Non-nil body is JSON-encoded; prepare can attach headers or cookies.
func (ts *testServer) request(t *testing.T, method, path string, body any, prepare func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prepare != nil {
		prepare(req)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the public endpoint and returns a
// bearer access token for it.
func (ts *testServer) register(t *testing.T, role, email, password string) string {
	t.Helper()
	w := ts.request(t, http.MethodPost, "/"+role+"/register/", gin.H{
		"email":    email,
		"password": password,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s as %s: status = %d, body %s", email, role, w.Code, w.Body.String())
	}

	w = ts.request(t, http.MethodPost, "/token/", gin.H{
		"email":    email,
		"password": password,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("token for %s: status = %d, body %s", email, w.Code, w.Body.String())
	}
	var pair struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
		t.Fatalf("decode token response: %v", err)
	}
	return pair.Access
}

func bearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
