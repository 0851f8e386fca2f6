package auth

import "golang.org/x/crypto/bcrypt"

// Matches reports whether plaintext matches the stored bcrypt hash.
// A malformed hash is treated as a non-match rather than an error, so
// callers cannot distinguish it from a wrong password.
func Matches(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plaintext)) == nil
}

// HashPassword produces a bcrypt hash at the default cost. Users are
// provisioned out-of-band (cmd/seed), not through the HTTP surface.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
