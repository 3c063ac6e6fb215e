package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// TemporaryPasswordBytes is the entropy of passwords generated for new employees.
// Hex encoding doubles it in characters.
const TemporaryPasswordBytes = 12

// Credentials is a login password and its bcrypt hash.
// Generated is set when the password was created here rather than supplied by an admin.
type Credentials struct {
	Password  string
	Hash      string
	Generated bool
}

// NewCredentials hashes password, generating a temporary one when it is empty.
func NewCredentials(password string) (Credentials, error) {
	creds := Credentials{Password: password}
	if creds.Password == "" {
		b := make([]byte, TemporaryPasswordBytes)
		if _, err := rand.Read(b); err != nil {
			return Credentials{}, fmt.Errorf("failed to read random bytes: %w", err)
		}
		creds.Password, creds.Generated = hex.EncodeToString(b), true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to hash password: %w", err)
	}
	creds.Hash = string(hash)
	return creds, nil
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
