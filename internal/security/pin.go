// Package security hashes and verifies card PINs.
package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPIN returns the lowercase hex SHA-256 digest of pin.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN compares the digest of pin with storedHash in constant time.
func VerifyPIN(pin, storedHash string) bool {
	computed := HashPIN(pin)
	if len(storedHash) != len(computed) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
