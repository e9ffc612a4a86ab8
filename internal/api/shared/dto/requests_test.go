package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subvault/subvault-api/internal/api/shared/dto"
	"github.com/subvault/subvault-api/internal/domain"
)

const recipient = "0x1111111111111111111111111111111111111111"

func strPtr(s string) *string { return &s }

func TestCreateVaultRequest_Validate(t *testing.T) {
	req := &dto.CreateVaultRequest{Name: "Rent"}
	require.NoError(t, req.Validate())
	assert.Equal(t, string(domain.ChainBaseMainnet), req.ChainID)

	tests := []struct {
		name    string
		req     dto.CreateVaultRequest
		details string
	}{
		{"blank name", dto.CreateVaultRequest{Name: "   "}, "name is required"},
		{"long name", dto.CreateVaultRequest{Name: strings.Repeat("a", 101)}, "name must be at most 100 characters"},
		{"long emoji", dto.CreateVaultRequest{Name: "Rent", Emoji: strings.Repeat("x", 17)}, "emoji must be at most 16 characters"},
		{"bad owner", dto.CreateVaultRequest{Name: "Rent", OwnerID: strPtr("42")}, "owner_id must be a UUID"},
		{"bad chain", dto.CreateVaultRequest{Name: "Rent", ChainID: "eip155:10"}, "unsupported chain_id: eip155:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.details)
		})
	}
}

func TestUpdateVaultRequest_Validate(t *testing.T) {
	assert.Error(t, (&dto.UpdateVaultRequest{}).Validate())
	assert.Error(t, (&dto.UpdateVaultRequest{Name: strPtr("")}).Validate())
	assert.NoError(t, (&dto.UpdateVaultRequest{Handle: strPtr("")}).Validate())
	assert.NoError(t, (&dto.UpdateVaultRequest{Description: strPtr("groceries and such")}).Validate())
}

func TestCreatePaymentsRequest_Validate(t *testing.T) {
	valid := func() dto.CreatePaymentsRequest {
		return dto.CreatePaymentsRequest{RecipientAddress: recipient, Amount: "1000000"}
	}

	req := valid()
	assert.NoError(t, req.Validate())

	req = valid()
	req.ExecutionMode = "manual"
	assert.NoError(t, req.Validate())

	req = valid()
	req.ExecutionMode = "auto"
	assert.ErrorContains(t, req.Validate(), "execution_mode auto is not supported")

	req = valid()
	req.RecipientAddress = "0x123"
	assert.ErrorContains(t, req.Validate(), "invalid recipient_address")

	req = valid()
	req.Amount = "1.5"
	assert.ErrorContains(t, req.Validate(), "invalid amount")

	req = valid()
	req.Amount = "007"
	assert.Error(t, req.Validate())

	req = valid()
	req.ExecutionDates = make([]time.Time, 101)
	assert.ErrorContains(t, req.Validate(), "maximum 100 execution dates allowed")
}

func TestUpdatePaymentRequest_Validate(t *testing.T) {
	assert.ErrorContains(t, (&dto.UpdatePaymentRequest{}).Validate(), "at least one field is required")
	assert.Error(t, (&dto.UpdatePaymentRequest{VaultID: strPtr("vault")}).Validate())
	assert.Error(t, (&dto.UpdatePaymentRequest{Amount: strPtr("-1")}).Validate())
	assert.NoError(t, (&dto.UpdatePaymentRequest{RecipientName: strPtr("Landlord")}).Validate())
}

func TestUpdatePaymentStatusRequest_Validate(t *testing.T) {
	assert.NoError(t, (&dto.UpdatePaymentStatusRequest{Status: domain.PaymentStatusCancelled}).Validate())
	assert.ErrorContains(t, (&dto.UpdatePaymentStatusRequest{Status: "done"}).Validate(), "invalid status: done")
}

func TestRecordExecutionRequest_Validate(t *testing.T) {
	assert.NoError(t, (&dto.RecordExecutionRequest{TransactionHash: "0x" + strings.Repeat("ab", 32)}).Validate())
	assert.Error(t, (&dto.RecordExecutionRequest{TransactionHash: "0xabc"}).Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	done := true
	assert.NoError(t, (&dto.UpdateProfileRequest{OnboardingComplete: &done}).Validate())
	assert.Error(t, (&dto.UpdateProfileRequest{}).Validate())
	assert.Error(t, (&dto.UpdateProfileRequest{SubAccountAddress: strPtr("nope")}).Validate())
}
