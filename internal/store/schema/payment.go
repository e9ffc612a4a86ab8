package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/subvault/subvault-api/internal/domain"
)

// Payment represents the payments table - a one-time transfer scheduled against a vault
type Payment struct {
	// ID is the payment identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// VaultID references the vault; payments are deleted with their vault
	VaultID uuid.UUID `gorm:"column:vault_id;not null;type:uuid;index"`
	// RecipientAddress is the transfer destination
	RecipientAddress string `gorm:"column:recipient_address;not null;type:varchar(42)"`
	// RecipientName is an optional label for the recipient
	RecipientName *string `gorm:"column:recipient_name;type:text"`
	// TokenAddress is the ERC-20 contract being transferred (USDC)
	TokenAddress string `gorm:"column:token_address;not null;type:varchar(42)"`
	// Amount is a non-negative integer string in the token's smallest unit
	Amount string `gorm:"column:amount;not null;type:text"`
	// Status is the lifecycle status
	Status domain.PaymentStatus `gorm:"column:status;not null;default:'pending';type:text"`
	// ExecutionMode is always manual; execution is driven by the user
	ExecutionMode domain.ExecutionMode `gorm:"column:execution_mode;not null;default:'manual';type:text"`
	// NextExecutionDate is when the user intends to execute the payment
	NextExecutionDate *time.Time `gorm:"column:next_execution_date;type:timestamptz"`
	// SeriesID groups payments created together from several execution dates
	SeriesID *uuid.UUID `gorm:"column:series_id;type:uuid;index"`
	// ExecutedCount counts recorded executions
	ExecutedCount int `gorm:"column:executed_count;not null;default:0"`
	// TransactionHashes is the ordered list of recorded transaction hashes
	TransactionHashes datatypes.JSONSlice[string] `gorm:"column:transaction_hashes;not null;type:jsonb"`
	// ChainID is the CAIP-2 chain of the transfer
	ChainID string `gorm:"column:chain_id;not null;type:text"`
	// LastExecutedAt is the time of the most recent recorded execution
	LastExecutedAt *time.Time `gorm:"column:last_executed_at;type:timestamptz"`
	// CreatedAt is the timestamp when the payment was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}
