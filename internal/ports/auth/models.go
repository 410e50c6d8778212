package auth

// Claims representa la identidad del staff autenticado en la sesión.
type Claims struct {
	UserID   string
	Username string
}
