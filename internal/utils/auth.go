package utils

import (
  "fmt"
  "strings"
  "golang.org/x/crypto/bcrypt"
)

func NormalizeEmail(email string) string {
  return strings.ToLower(strings.TrimSpace(email))
}

func HashPassword(password string) (string, error) {
  if len(password) < 8 {
    return "", fmt.Errorf("password must be at least 8 characters")
  }
  hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    return "", fmt.Errorf("Failed to hash password: %w", err)
  }
  return string(hashed), nil
}

func CheckPassword(hashed, password string) error {
  return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
