package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

type InviteTokenRepository struct {
	DB *gorm.DB
}

func (i *InviteTokenRepository) Create(invite *InviteToken) error {
	if res := i.DB.Create(invite); res.Error != nil {
		log.Printf("error creating invite token: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (i *InviteTokenRepository) List() ([]InviteToken, error) {
	var invites []InviteToken

	res := i.DB.Order("created_at DESC").Find(&invites)
	if res.Error != nil {
		log.Printf("error listing invite tokens: %s\n", res.Error)
		return nil, res.Error
	}
	return invites, nil
}

func (i *InviteTokenRepository) FindByToken(token string) (*InviteToken, error) {
	var invite InviteToken

	res := i.DB.Where("token = ?", token).First(&invite)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invite, res.Error
}

// Redeem claims the token and creates the account in a single transaction.
// The claim is a conditional update keyed on used = false, so two concurrent
// redemptions of the same token end with exactly one success and one
// ErrInviteUsed; the losing transaction rolls back and leaves no account row
// behind. The granted role is the one recorded on the token at issue time.
// On success the claimed token is returned for auditing.
func (i *InviteTokenRepository) Redeem(tokenString string, user *User) (*InviteToken, error) {
	var invite InviteToken

	err := i.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("token = ?", tokenString).First(&invite)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return ErrInviteNotFound
		}
		if res.Error != nil {
			return res.Error
		}
		if invite.Used {
			return ErrInviteUsed
		}
		if invite.Expired() {
			return ErrInviteExpired
		}

		user.Role = invite.Role
		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateIdentity
			}
			return err
		}

		now := time.Now().UTC()
		claim := tx.Model(&InviteToken{}).
			Where("token = ? AND used = ?", tokenString, false).
			Updates(map[string]interface{}{"used": true, "used_by": user.ID, "used_at": now})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrInviteUsed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &invite, nil
}
