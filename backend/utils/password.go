package utils

import "golang.org/x/crypto/bcrypt"

// bcrypt reads at most 72 bytes of input; recent x/crypto versions error on
// anything longer instead of ignoring the tail. Passwords up to 128 chars
// are accepted at the boundary, so truncate here the way bcryptjs does.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// HashPassword derives a salted bcrypt hash from the plaintext password.
// Hashing is called explicitly by the signup path before anything is
// persisted; the hash depends only on the password and a random per-record
// salt, never on the email or the user id.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the candidate matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password)) == nil
}
