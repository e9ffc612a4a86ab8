package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/subvault/subvault-api/internal/domain"
)

// PaymentStatusChange represents the payment_status_changes table - audit log of status transitions
type PaymentStatusChange struct {
	// ID is an auto-incrementing sequence that orders changes
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PaymentID references the payment
	PaymentID uuid.UUID `gorm:"column:payment_id;not null;type:uuid;index"`
	// FromStatus is nil for the row written when the payment is created
	FromStatus *domain.PaymentStatus `gorm:"column:from_status;type:text"`
	// ToStatus is the status after the change
	ToStatus domain.PaymentStatus `gorm:"column:to_status;not null;type:text"`
	// ChangedBy is the user that made the change
	ChangedBy uuid.UUID `gorm:"column:changed_by;not null;type:uuid"`
	// CreatedAt is when the change happened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the PaymentStatusChange model
func (PaymentStatusChange) TableName() string {
	return "payment_status_changes"
}
