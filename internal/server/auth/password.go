package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword reports whether password matches the bcrypt hash.
// An empty hash never matches.
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckCredentials compares user names in constant time before checking the
// password hash.
func CheckCredentials(wantUser, hash, user, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(wantUser), []byte(user)) == 1
	passOK := CheckPassword(hash, password)
	if !userOK || !passOK {
		return errInvalidCredentials
	}
	return nil
}

var errInvalidCredentials = errors.New("invalid credentials")
