package schema

import "time"

// AuthNonce represents the auth_nonces table - single-use sign-in challenges
type AuthNonce struct {
	Nonce     string    `gorm:"column:nonce;primaryKey;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
}

func (AuthNonce) TableName() string {
	return "auth_nonces"
}
