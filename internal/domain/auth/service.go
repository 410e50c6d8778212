package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	portauth "paw-n-care/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("user not found")

	// ErrInvalidCredentials es deliberadamente genérico: no distinguimos
	// usuario inexistente de contraseña incorrecta.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidSession = errors.New("invalid session")
)

const sessionTTL = 24 * time.Hour

type session struct {
	claims    portauth.Claims
	expiresAt time.Time
}

// Service maneja credenciales (bcrypt) y sesiones en memoria.
// Implementa portauth.TokenVerifier para el middleware.
type Service struct {
	repo Repository
	now  func() time.Time

	mu       sync.RWMutex
	sessions map[string]session
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		now:      time.Now,
		sessions: make(map[string]session),
	}
}

// Register crea una credencial de staff con la contraseña hasheada.
func (s *Service) Register(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	return s.repo.Create(ctx, User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Login compara contra el hash y, si coincide, emite un token de sesión
// opaco. Cualquier mismatch devuelve el mismo error genérico.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	s.sessions[token] = session{
		claims: portauth.Claims{
			UserID:   strconv.FormatInt(u.ID, 10),
			Username: u.Username,
		},
		expiresAt: now.Add(sessionTTL),
	}
	s.mu.Unlock()

	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Verify implementa portauth.TokenVerifier.
func (s *Service) Verify(ctx context.Context, token string) (portauth.Claims, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return portauth.Claims{}, ErrInvalidSession
	}
	if s.now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return portauth.Claims{}, ErrInvalidSession
	}
	return sess.claims, nil
}
