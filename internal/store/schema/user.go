package schema

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table - one identity per wallet address
type User struct {
	// ID is the user identifier carried as the session subject
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// Address is the wallet address, stored lower-case
	Address string `gorm:"column:address;not null;uniqueIndex;type:varchar(42)"`
	// CredentialHash is the bcrypt hash of the server-derived pseudo-credential
	CredentialHash string `gorm:"column:credential_hash;not null;type:text" json:"-"`
	// CreatedAt is the timestamp when the identity was provisioned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Profile *UserProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Vaults  []Vault      `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
