package schema

import (
	"time"

	"github.com/google/uuid"
)

// VaultSpendingSummary represents a row of the vault_spending_summary view.
// TotalPaid and TotalScheduled are smallest-unit integer strings.
type VaultSpendingSummary struct {
	VaultID              uuid.UUID  `gorm:"column:vault_id" json:"vault_id"`
	OwnerID              uuid.UUID  `gorm:"column:owner_id" json:"owner_id"`
	PaymentCount         int64      `gorm:"column:payment_count" json:"payment_count"`
	ExecutedPaymentCount int64      `gorm:"column:executed_payment_count" json:"executed_payment_count"`
	TotalPaid            string     `gorm:"column:total_paid" json:"total_paid"`
	TotalScheduled       string     `gorm:"column:total_scheduled" json:"total_scheduled"`
	LastExecutedAt       *time.Time `gorm:"column:last_executed_at" json:"last_executed_at"`
}

// TableName specifies the view name for the VaultSpendingSummary model
func (VaultSpendingSummary) TableName() string {
	return "vault_spending_summary"
}
