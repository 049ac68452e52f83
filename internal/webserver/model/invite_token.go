package model

import (
	"crypto/rand"
	"encoding/base64"
	"time"
)

// InviteToken is a single-use, time-limited credential that authorizes
// account creation with the role recorded at issue time. A token is
// redeemable iff it is not used and has not expired; once used it becomes
// immutable except for the audit fields set on redemption.
type InviteToken struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Token     string `gorm:"uniqueIndex; not null"`
	CreatedBy uint   `gorm:"not null"`
	Role      int    `gorm:"not null"`
	ExpiresAt time.Time
	Used      bool `gorm:"default:false"`
	UsedBy    *uint
	UsedAt    *time.Time
}

func (i InviteToken) Expired() bool {
	return !time.Now().UTC().Before(i.ExpiresAt)
}

// NewInviteTokenString returns a URL-safe token with 256 bits of
// cryptographically strong randomness.
func NewInviteTokenString() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
