package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is the bcrypt cost used for freshly hashed passwords
const DefaultCost = 12

// Hash hashes a plaintext password using bcrypt
func Hash(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
