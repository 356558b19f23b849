package store

import (
	"errors"
	"strings"
	"sync"

	"github.com/Ojuara-e/asteca-seguranca1.0/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore holds the demo user accounts. Passwords are stored hashed even
// for the seeded fixture so the login path always compares against a hash.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewUserStore() (*UserStore, error) {
	demo := &models.User{
		Email:            "teste@astecaseguranca.com.br",
		Name:             "Aluno Teste",
		Team:             "Pintores Pro",
		Level:            3,
		Points:           250,
		CompletedCourses: []string{"nr35"},
		Badges:           []string{"safety_expert", "team_player", "perfect_attendance"},
	}
	if err := demo.SetPassword("asteca2025"); err != nil {
		return nil, err
	}

	return &UserStore{
		users: map[string]*models.User{demo.Email: demo},
	}, nil
}

// NormalizeEmail lowercases and trims an email the way login input is
// canonicalized before lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate resolves an email/password pair to the matching user.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[NormalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	if err := user.CheckPassword(password); err != nil {
		return nil, err
	}
	out := *user
	return &out, nil
}

// Get returns the user for an email, if registered.
func (s *UserStore) Get(email string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[NormalizeEmail(email)]
	if !ok {
		return nil, false
	}
	out := *user
	return &out, true
}

// Exists reports whether an email is already registered.
func (s *UserStore) Exists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[NormalizeEmail(email)]
	return ok
}
