package memory

import (
	"context"
	"errors"

	"paw-n-care/internal/domain/auth"
)

type usersRepo struct {
	s *Store
}

func (r usersRepo) Create(ctx context.Context, u auth.User) (auth.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return auth.User{}, errors.New("username already taken")
		}
	}

	u.ID = r.s.nextID("user")
	r.s.users = append(r.s.users, u)
	return u, nil
}

func (r usersRepo) GetByUsername(ctx context.Context, username string) (auth.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}
