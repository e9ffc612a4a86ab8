package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/subvault/subvault-api/internal/domain"
	"github.com/subvault/subvault-api/internal/store/schema"
)

// Store defines the interface for database operations that are not tied to an owner.
// Owner data is only reachable through ForOwner.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore,OwnerScope=MockOwnerScope
type Store interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// CreateNonce persists an issued nonce. A collision returns domain.ErrDuplicateNonce.
	CreateNonce(ctx context.Context, nonce string, createdAt, expiresAt time.Time) error
	// ConsumeNonce deletes the nonce if it exists and expires after now.
	// It reports true only for the single caller whose delete removed the row.
	ConsumeNonce(ctx context.Context, nonce string, now time.Time) (bool, error)
	// DeleteExpiredNonces removes up to limit nonces that expired before the cutoff
	DeleteExpiredNonces(ctx context.Context, before time.Time, limit int) (int64, error)

	// GetUserByAddress retrieves a user by lower-cased wallet address
	GetUserByAddress(ctx context.Context, address string) (*schema.User, error)
	// CreateUser creates a user and its profile in one transaction.
	// A concurrent creation of the same address returns domain.ErrUserExists.
	CreateUser(ctx context.Context, input CreateUserInput) (*schema.User, error)

	// ForOwner returns the data-access capability of a single user
	ForOwner(userID uuid.UUID) OwnerScope
}

// OwnerScope is the only path to vaults, payments, profiles and summaries.
// Every query it issues is restricted to rows owned by OwnerID; rows of other
// owners behave as if they did not exist.
type OwnerScope interface {
	// OwnerID returns the user this scope is bound to
	OwnerID() uuid.UUID

	// CreateVault creates a vault with a handle unique among the owner's vaults
	CreateVault(ctx context.Context, input CreateVaultInput) (*schema.Vault, error)
	// GetVault retrieves a vault by ID
	GetVault(ctx context.Context, id uuid.UUID) (*schema.Vault, error)
	// GetVaultByHandle retrieves a vault by handle, case-insensitively
	GetVaultByHandle(ctx context.Context, handle string) (*schema.Vault, error)
	// ListVaults lists the owner's vaults, newest first
	ListVaults(ctx context.Context) ([]schema.Vault, error)
	// UpdateVault applies a partial update; nil means not found
	UpdateVault(ctx context.Context, id uuid.UUID, input UpdateVaultInput) (*schema.Vault, error)
	// DeleteVault deletes a vault and, by cascade, its payments
	DeleteVault(ctx context.Context, id uuid.UUID) (bool, error)

	// CreatePayments creates one payment per execution date in the given vault; nil means the vault was not found
	CreatePayments(ctx context.Context, input CreatePaymentsInput) ([]schema.Payment, error)
	// GetPayment retrieves a payment by ID
	GetPayment(ctx context.Context, id uuid.UUID) (*schema.Payment, error)
	// ListPayments lists payments matching the filter
	ListPayments(ctx context.Context, filter PaymentFilter) ([]schema.Payment, error)
	// UpdatePayment applies a partial update to an open payment; nil means not found
	UpdatePayment(ctx context.Context, id uuid.UUID, input UpdatePaymentInput) (*schema.Payment, error)
	// UpdatePaymentStatus transitions a payment and records the change
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) (*schema.Payment, error)
	// RecordPaymentExecution records a transaction hash reported by the client and completes the payment
	RecordPaymentExecution(ctx context.Context, id uuid.UUID, txHash string, executedAt time.Time) (*schema.Payment, error)
	// DeletePayment deletes a payment
	DeletePayment(ctx context.Context, id uuid.UUID) (bool, error)
	// ListPaymentStatusChanges lists a payment's status history, oldest first; nil means not found
	ListPaymentStatusChanges(ctx context.Context, paymentID uuid.UUID) ([]schema.PaymentStatusChange, error)

	// GetProfile retrieves the owner's profile
	GetProfile(ctx context.Context) (*schema.UserProfile, error)
	// UpdateProfile applies a partial update to the owner's profile
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*schema.UserProfile, error)

	// ListSpendingSummaries lists per-vault totals for the owner's vaults
	ListSpendingSummaries(ctx context.Context) ([]schema.VaultSpendingSummary, error)
	// GetSpendingSummary retrieves the totals of one vault
	GetSpendingSummary(ctx context.Context, vaultID uuid.UUID) (*schema.VaultSpendingSummary, error)
}

// CreateUserInput represents the data needed to provision a user identity
type CreateUserInput struct {
	Address        string
	CredentialHash string
}

// CreateVaultInput represents the data needed to create a vault
type CreateVaultInput struct {
	// OwnerID, when set, must equal the scope's owner
	OwnerID     *uuid.UUID
	Name        string
	Handle      *string
	Emoji       string
	Description *string
	ChainID     domain.Chain
}

// UpdateVaultInput represents a partial vault update. Only a supplied handle
// is re-normalized and re-uniquified; renaming keeps the existing handle.
type UpdateVaultInput struct {
	Name        *string
	Handle      *string
	Emoji       *string
	Description *string
}

// CreatePaymentsInput represents the data needed to schedule payments in a vault
type CreatePaymentsInput struct {
	VaultID          uuid.UUID
	RecipientAddress string
	RecipientName    *string
	TokenAddress     string
	Amount           string
	ExecutionMode    domain.ExecutionMode
	// ExecutionDates yields one payment per date; empty yields one undated payment
	ExecutionDates []time.Time
}

// UpdatePaymentInput represents a partial payment update
type UpdatePaymentInput struct {
	// VaultID moves the payment to a vault on the same chain; a vault outside
	// the scope matches nothing
	VaultID           *uuid.UUID
	RecipientAddress  *string
	RecipientName     *string
	TokenAddress      *string
	Amount            *string
	NextExecutionDate *time.Time
}

// PaymentFilter narrows ListPayments
type PaymentFilter struct {
	VaultID  *uuid.UUID
	SeriesID *uuid.UUID
	Statuses []domain.PaymentStatus
	Limit    int
	Offset   int
}

// UpdateProfileInput represents a partial profile update
type UpdateProfileInput struct {
	SubAccountAddress  *string
	OnboardingComplete *bool
}
