package schema

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile represents the user_profiles table
type UserProfile struct {
	UserID             uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid"`
	Address            string    `gorm:"column:address;not null;type:varchar(42)"`
	SubAccountAddress  *string   `gorm:"column:sub_account_address;type:varchar(42)"`
	OnboardingComplete bool      `gorm:"column:onboarding_complete;not null;default:false"`
	CreatedAt          time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt          time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the UserProfile model
func (UserProfile) TableName() string {
	return "user_profiles"
}
