package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies user passwords with bcrypt.
type PasswordService struct{}

func NewPasswordService() *PasswordService {
	return &PasswordService{}
}

// Hash derives a bcrypt hash from a plaintext password.
func (s *PasswordService) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether plain matches the stored hash.
func (s *PasswordService) Compare(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
