package auth

// User es una credencial de staff de la clínica.
// La contraseña se guarda solo como hash bcrypt, nunca en claro.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}
