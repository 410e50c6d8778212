package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testUsers struct {
	byName map[string]User
	nextID int64
}

func newTestUsers() *testUsers {
	return &testUsers{byName: map[string]User{}}
}

func (r *testUsers) Create(ctx context.Context, u User) (User, error) {
	if _, ok := r.byName[u.Username]; ok {
		return User{}, errors.New("username already taken")
	}
	r.nextID++
	u.ID = r.nextID
	r.byName[u.Username] = u
	return u, nil
}

func (r *testUsers) GetByUsername(ctx context.Context, username string) (User, error) {
	u, ok := r.byName[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newTestUsers()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "reception", "sup3rsecret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "sup3rsecret" {
		t.Fatal("password stored in plaintext")
	}
	if u.PasswordHash == "" {
		t.Fatal("missing password hash")
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewService(newTestUsers())

	if _, err := svc.Register(context.Background(), "reception", "short"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_GenericErrorOnAnyMismatch(t *testing.T) {
	svc := NewService(newTestUsers())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "reception", "sup3rsecret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	// usuario inexistente y password incorrecta devuelven lo mismo
	if _, err := svc.Login(ctx, "ghost", "whatever1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, err := svc.Login(ctx, "reception", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
}

func TestLoginVerifyLogout(t *testing.T) {
	svc := NewService(newTestUsers())
	ctx := context.Background()

	if _, err := svc.Register(ctx, "reception", "sup3rsecret"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(ctx, "reception", "sup3rsecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Username != "reception" {
		t.Fatalf("expected username reception, got %q", claims.Username)
	}

	svc.Logout(ctx, token)
	if _, err := svc.Verify(ctx, token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after logout, got %v", err)
	}
}

func TestVerify_ExpiredSession(t *testing.T) {
	svc := NewService(newTestUsers())
	ctx := context.Background()

	base := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	if _, err := svc.Register(ctx, "reception", "sup3rsecret"); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := svc.Login(ctx, "reception", "sup3rsecret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	// justo después del TTL la sesión muere
	svc.now = func() time.Time { return base.Add(sessionTTL + time.Minute) }
	if _, err := svc.Verify(ctx, token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession after expiry, got %v", err)
	}
}
