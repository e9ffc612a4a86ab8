package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/subvault/subvault-api/internal/auth"
	"github.com/subvault/subvault-api/internal/domain"
)

func TestDeriveCredential(t *testing.T) {
	secret := []byte("credential-secret")

	a := auth.DeriveCredential(secret, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	b := auth.DeriveCredential(secret, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	assert.NotEqual(t, a, auth.DeriveCredential([]byte("another-secret"), "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"))
	assert.NotEqual(t, a, auth.DeriveCredential(secret, "0x0000000000000000000000000000000000000001"))
}

func TestHashAndCompareCredential(t *testing.T) {
	credential := auth.DeriveCredential([]byte("credential-secret"), "0x0000000000000000000000000000000000000001")

	hash, err := auth.HashCredential(credential, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, credential, hash)

	assert.NoError(t, auth.CompareCredential(hash, credential))
	assert.ErrorIs(t, auth.CompareCredential(hash, "wrong"), domain.ErrCredentialMismatch)

	err = auth.CompareCredential("not-a-bcrypt-hash", credential)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCredentialMismatch)
}
