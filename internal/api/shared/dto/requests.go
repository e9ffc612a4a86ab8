package dto

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/subvault/subvault-api/internal/api/shared/constants"
	apierrors "github.com/subvault/subvault-api/internal/api/shared/errors"
	"github.com/subvault/subvault-api/internal/domain"
)

// VerifyRequest represents the request body of a sign-in attempt
type VerifyRequest struct {
	Address   string `json:"address"`
	Message   string `json:"message"`
	Signature string `json:"signature"`
}

// UpdateProfileRequest represents the request body for updating the caller's profile
type UpdateProfileRequest struct {
	SubAccountAddress  *string `json:"sub_account_address,omitempty"`
	OnboardingComplete *bool   `json:"onboarding_complete,omitempty"`
}

// Validate validates the request body
func (r *UpdateProfileRequest) Validate() error {
	if r.SubAccountAddress == nil && r.OnboardingComplete == nil {
		return apierrors.NewValidationError("at least one field is required")
	}

	if r.SubAccountAddress != nil && !domain.IsEthereumAddress(*r.SubAccountAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid sub_account_address: %s", *r.SubAccountAddress))
	}

	return nil
}

// CreateVaultRequest represents the request body for creating a vault
type CreateVaultRequest struct {
	// OwnerID is optional; when present it must be the caller
	OwnerID     *string `json:"owner_id,omitempty"`
	Name        string  `json:"name"`
	Handle      *string `json:"handle,omitempty"`
	Emoji       string  `json:"emoji"`
	Description *string `json:"description,omitempty"`
	ChainID     string  `json:"chain_id"`
}

// Validate validates the request body
func (r *CreateVaultRequest) Validate() error {
	if r.OwnerID != nil {
		if _, err := uuid.Parse(*r.OwnerID); err != nil {
			return apierrors.NewValidationError("owner_id must be a UUID")
		}
	}

	if err := validateVaultName(r.Name); err != nil {
		return err
	}

	if err := validateVaultText(&r.Emoji, r.Description); err != nil {
		return err
	}

	if r.ChainID == "" {
		r.ChainID = string(domain.ChainBaseMainnet)
	}
	if !domain.IsValidChain(domain.Chain(r.ChainID)) {
		return apierrors.NewValidationError(fmt.Sprintf("unsupported chain_id: %s", r.ChainID))
	}

	return nil
}

// UpdateVaultRequest represents a partial vault update
type UpdateVaultRequest struct {
	Name        *string `json:"name,omitempty"`
	Handle      *string `json:"handle,omitempty"`
	Emoji       *string `json:"emoji,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate validates the request body
func (r *UpdateVaultRequest) Validate() error {
	if r.Name == nil && r.Handle == nil && r.Emoji == nil && r.Description == nil {
		return apierrors.NewValidationError("at least one field is required")
	}

	if r.Name != nil {
		if err := validateVaultName(*r.Name); err != nil {
			return err
		}
	}

	return validateVaultText(r.Emoji, r.Description)
}

func validateVaultName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apierrors.NewValidationError("name is required")
	}
	if utf8.RuneCountInString(name) > constants.MAX_VAULT_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("name must be at most %d characters", constants.MAX_VAULT_NAME_LENGTH))
	}
	return nil
}

func validateVaultText(emoji *string, description *string) error {
	if emoji != nil && utf8.RuneCountInString(*emoji) > constants.MAX_EMOJI_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("emoji must be at most %d characters", constants.MAX_EMOJI_LENGTH))
	}
	if description != nil && utf8.RuneCountInString(*description) > constants.MAX_DESCRIPTION_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("description must be at most %d characters", constants.MAX_DESCRIPTION_LENGTH))
	}
	return nil
}

// CreatePaymentsRequest represents the request body for scheduling payments in a vault.
// Each execution date yields one payment; several dates share a series.
type CreatePaymentsRequest struct {
	RecipientAddress string  `json:"recipient_address"`
	RecipientName    *string `json:"recipient_name,omitempty"`
	// TokenAddress defaults to USDC on the vault's chain
	TokenAddress   *string     `json:"token_address,omitempty"`
	Amount         string      `json:"amount"`
	ExecutionMode  string      `json:"execution_mode,omitempty"`
	ExecutionDates []time.Time `json:"execution_dates,omitempty"`
}

// Validate validates the request body
func (r *CreatePaymentsRequest) Validate() error {
	if !domain.IsEthereumAddress(r.RecipientAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid recipient_address: %s", r.RecipientAddress))
	}

	if r.TokenAddress != nil && !domain.IsEthereumAddress(*r.TokenAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid token_address: %s", *r.TokenAddress))
	}

	if err := validateRecipientName(r.RecipientName); err != nil {
		return err
	}

	if err := domain.ValidateAmount(r.Amount); err != nil {
		return apierrors.NewValidationError(err.Error())
	}

	switch domain.ExecutionMode(r.ExecutionMode) {
	case "", domain.ExecutionModeManual:
	case domain.ExecutionModeAuto:
		return apierrors.NewValidationError("execution_mode auto is not supported")
	default:
		return apierrors.NewValidationError(fmt.Sprintf("invalid execution_mode: %s", r.ExecutionMode))
	}

	if len(r.ExecutionDates) > constants.MAX_EXECUTION_DATES_PER_REQUEST {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d execution dates allowed", constants.MAX_EXECUTION_DATES_PER_REQUEST))
	}

	return nil
}

// UpdatePaymentRequest represents a partial payment update
type UpdatePaymentRequest struct {
	VaultID           *string    `json:"vault_id,omitempty"`
	RecipientAddress  *string    `json:"recipient_address,omitempty"`
	RecipientName     *string    `json:"recipient_name,omitempty"`
	TokenAddress      *string    `json:"token_address,omitempty"`
	Amount            *string    `json:"amount,omitempty"`
	NextExecutionDate *time.Time `json:"next_execution_date,omitempty"`
}

// Validate validates the request body
func (r *UpdatePaymentRequest) Validate() error {
	if r.VaultID == nil && r.RecipientAddress == nil && r.RecipientName == nil &&
		r.TokenAddress == nil && r.Amount == nil && r.NextExecutionDate == nil {
		return apierrors.NewValidationError("at least one field is required")
	}

	if r.VaultID != nil {
		if _, err := uuid.Parse(*r.VaultID); err != nil {
			return apierrors.NewValidationError("vault_id must be a UUID")
		}
	}

	if r.RecipientAddress != nil && !domain.IsEthereumAddress(*r.RecipientAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid recipient_address: %s", *r.RecipientAddress))
	}

	if r.TokenAddress != nil && !domain.IsEthereumAddress(*r.TokenAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid token_address: %s", *r.TokenAddress))
	}

	if err := validateRecipientName(r.RecipientName); err != nil {
		return err
	}

	if r.Amount != nil {
		if err := domain.ValidateAmount(*r.Amount); err != nil {
			return apierrors.NewValidationError(err.Error())
		}
	}

	return nil
}

func validateRecipientName(name *string) error {
	if name != nil && utf8.RuneCountInString(*name) > constants.MAX_RECIPIENT_NAME_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("recipient_name must be at most %d characters", constants.MAX_RECIPIENT_NAME_LENGTH))
	}
	return nil
}

// UpdatePaymentStatusRequest represents the request body for a status transition
type UpdatePaymentStatusRequest struct {
	Status domain.PaymentStatus `json:"status"`
}

// Validate validates the request body
func (r *UpdatePaymentStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %s", r.Status))
	}
	return nil
}

// RecordExecutionRequest represents a transaction hash reported by the client
// after it broadcast the transfer
type RecordExecutionRequest struct {
	TransactionHash string `json:"transaction_hash"`
}

// Validate validates the request body
func (r *RecordExecutionRequest) Validate() error {
	if !domain.IsTransactionHash(r.TransactionHash) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid transaction_hash: %s", r.TransactionHash))
	}
	return nil
}
