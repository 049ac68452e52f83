package model

import "time"

// Activity is an append-only audit entry recorded on privileged actions. It
// references accounts but does not own them.
type Activity struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	AdminID      uint   `gorm:"not null"`
	Action       string `gorm:"not null"`
	TargetUserID *uint
}
