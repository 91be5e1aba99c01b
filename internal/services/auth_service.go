package services

import (
	"errors"
	"time"

	"royalstudy/internal/auth"
	"royalstudy/internal/domain"
	"royalstudy/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrEmailTaken = errors.New("email already registered")
)

// Bearer tokens are long-lived; there is no refresh flow.
const tokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	Users       *repos.UserRepo
	TokenSecret string
}

// Login binds the session to the user and returns the user plus a
// bearer token for the JSON API.
func (s *AuthService) Login(sid, email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, "", err
	}
	tok, err := auth.GenerateToken(s.TokenSecret, u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Register creates a USER account and logs it in. Field validation is
// the handler's job; this only rejects duplicate emails.
func (s *AuthService) Register(sid, email, name, password string) (*domain.User, string, error) {
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}
	u := domain.User{ID: uuid.NewString(), Email: email, Name: name, Hash: string(h), Role: "USER"}
	if err := s.Users.Create(u); err != nil {
		return nil, "", err
	}
	return s.Login(sid, email, password)
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

// UserFromToken resolves a bearer token to its user.
func (s *AuthService) UserFromToken(token string) (*domain.User, error) {
	claims, err := auth.ParseToken(s.TokenSecret, token)
	if err != nil {
		return nil, err
	}
	return s.Users.ByID(claims.Sub)
}
