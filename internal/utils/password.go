package utils

import "golang.org/x/crypto/bcrypt"

// passwordCost is bcrypt's work factor for newly hashed passwords. Raising it
// only affects new registrations; existing hashes keep the cost they were
// created with and still verify.
const passwordCost = bcrypt.DefaultCost

// HashPassword derives a bcrypt hash of the plaintext for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext matches the stored hash.
// Any bcrypt failure counts as a mismatch; login does not distinguish a bad
// password from a malformed hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
