package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type PendingAuthRepository struct {
	DB *gorm.DB
}

func (p *PendingAuthRepository) Create(pending *PendingAuth) error {
	if res := p.DB.Create(pending); res.Error != nil {
		log.Printf("error creating pending authentication: %s\n", res.Error)
		return res.Error
	}
	return nil
}

func (p *PendingAuthRepository) FindByUuid(uuid string) (*PendingAuth, error) {
	var pending PendingAuth

	res := p.DB.Where("uuid = ?", uuid).First(&pending)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pending, res.Error
}

func (p *PendingAuthRepository) Delete(uuid string) error {
	res := p.DB.Where("uuid = ?", uuid).Delete(&PendingAuth{})
	if res.Error != nil {
		log.Printf("error deleting pending authentication: %s\n", res.Error)
	}
	return res.Error
}
