package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor used for every stored password.
const PasswordCost = 8

// prehash folds a password of any length into 44 bytes, below bcrypt's
// 72 byte input limit.
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword returns a salted bcrypt hash of plain.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword(prehash(plain), PasswordCost)
}

// ComparePassword reports whether plain matches the stored hash.
func ComparePassword(hash []byte, plain string) bool {
	return bcrypt.CompareHashAndPassword(hash, prehash(plain)) == nil
}
