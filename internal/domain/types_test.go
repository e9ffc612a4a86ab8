package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainID(t *testing.T) {
	id, err := ChainBaseMainnet.ID()
	require.NoError(t, err)
	assert.Equal(t, uint64(8453), id)

	id, err = ChainBaseSepolia.ID()
	require.NoError(t, err)
	assert.Equal(t, uint64(84532), id)

	assert.Equal(t, ChainBaseSepolia, ChainFromID(84532))

	_, err = Chain("tezos:mainnet").ID()
	assert.Error(t, err)

	_, err = Chain("eip155:abc").ID()
	assert.Error(t, err)
}

func TestPaymentStatusTransitions(t *testing.T) {
	tests := []struct {
		from PaymentStatus
		to   PaymentStatus
		want bool
	}{
		{PaymentStatusPending, PaymentStatusActive, true},
		{PaymentStatusPending, PaymentStatusPaused, true},
		{PaymentStatusPending, PaymentStatusCompleted, true},
		{PaymentStatusPending, PaymentStatusCancelled, true},
		{PaymentStatusActive, PaymentStatusPaused, true},
		{PaymentStatusActive, PaymentStatusCompleted, true},
		{PaymentStatusActive, PaymentStatusPending, false},
		{PaymentStatusPaused, PaymentStatusActive, true},
		{PaymentStatusPaused, PaymentStatusCompleted, false},
		{PaymentStatusCompleted, PaymentStatusActive, false},
		{PaymentStatusCancelled, PaymentStatusPending, false},
		{PaymentStatusPending, PaymentStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, PaymentStatusCompleted.Terminal())
	assert.True(t, PaymentStatusCancelled.Terminal())
	assert.False(t, PaymentStatusPaused.Terminal())
	assert.False(t, PaymentStatus("archived").Valid())
}

func TestAddressHelpers(t *testing.T) {
	assert.True(t, IsEthereumAddress("0xAbC0000000000000000000000000000000000001"))
	assert.False(t, IsEthereumAddress("0xabc"))
	assert.False(t, IsEthereumAddress("abc0000000000000000000000000000000000000001"))
	assert.Equal(t, "0xabc0000000000000000000000000000000000001", NormalizeAddress(" 0xAbC0000000000000000000000000000000000001 "))

	assert.True(t, IsTransactionHash("0x"+"ab"+"0000000000000000000000000000000000000000000000000000000000000000"[:62]))
	assert.False(t, IsTransactionHash("0x1234"))
}
