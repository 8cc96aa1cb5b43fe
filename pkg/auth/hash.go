package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

type HashServiceInterface interface {
	HashToken(token string) (string, error)
	CompareToken(hashedToken, token string) bool
}

type HashService struct{}

func (b *HashService) HashToken(token string) (string, error) {
	if token == "" {
		return "", errors.New("token cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *HashService) CompareToken(hashedToken, token string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedToken), []byte(token))
	return err == nil
}
