package schema

import (
	"time"

	"github.com/google/uuid"
)

// Vault represents the vaults table - a named budget category owned by one user
type Vault struct {
	// ID is the vault identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// OwnerID references the owning user; vaults are deleted with their owner
	OwnerID uuid.UUID `gorm:"column:owner_id;not null;type:uuid;index"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:text"`
	// Handle is the URL-safe slug, unique per owner (case-insensitive)
	Handle string `gorm:"column:handle;not null;type:varchar(50)"`
	// Emoji is an optional display glyph
	Emoji string `gorm:"column:emoji;not null;default:'';type:text"`
	// Description is free text
	Description *string `gorm:"column:description;type:text"`
	// ChainID is the CAIP-2 chain the vault's payments settle on (e.g. "eip155:8453")
	ChainID string `gorm:"column:chain_id;not null;type:text"`
	// CreatedAt is the timestamp when the vault was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Payments []Payment `gorm:"foreignKey:VaultID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Vault model
func (Vault) TableName() string {
	return "vaults"
}
