package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/subvault/subvault-api/internal/domain"
)

// DeriveCredential returns hex(HMAC-SHA256(secret, address)) for the
// lower-cased address. It is recomputed at every sign-in and never stored.
func DeriveCredential(secret []byte, address string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(domain.NormalizeAddress(address)))
	return hex.EncodeToString(mac.Sum(nil))
}

// HashCredential returns the bcrypt hash stored for a credential
func HashCredential(credential string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash credential: %w", err)
	}
	return string(hash), nil
}

// CompareCredential checks a credential against its stored hash
func CompareCredential(hash, credential string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return domain.ErrCredentialMismatch
		}
		return fmt.Errorf("failed to compare credential: %w", err)
	}
	return nil
}
