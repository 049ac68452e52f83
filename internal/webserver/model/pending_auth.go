package model

import "time"

// PendingAuth records a login that passed the password check but still owes a
// second factor. It is a short-lived server-side record with its own expiry,
// removed as soon as the second step completes.
type PendingAuth struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Uuid      string `gorm:"uniqueIndex; not null"`
	UserID    uint   `gorm:"not null"`
	ExpiresAt time.Time
}

func (p PendingAuth) Expired() bool {
	return !time.Now().UTC().Before(p.ExpiresAt)
}
