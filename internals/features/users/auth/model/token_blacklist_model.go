package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist guarda tokens revocados por logout hasta su expiración.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `gorm:"type:uuid;primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	Token            string    `gorm:"type:text;uniqueIndex;not null;column:token" json:"token"`
	ExpiresAt        time.Time `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt        time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (t *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if t.TokenBlacklistID == uuid.Nil {
		t.TokenBlacklistID = uuid.New()
	}
	return nil
}
