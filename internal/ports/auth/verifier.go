package auth

import "context"

// TokenVerifier verifica un token de sesión y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
