package security

import (
	"github.com/nbrandao/equidade/internal/webserver/model"
)

type usersRepository interface {
	FindByUuid(uuid string) (*model.User, error)
	Update(user *model.User) error
}

type activityRepository interface {
	Record(adminID uint, action string, targetUserID *uint)
}

type Config struct {
	// Issuer is the label authenticator apps show next to the account.
	Issuer string
}

type Controller struct {
	repository usersRepository
	activity   activityRepository
	config     Config
}

func NewController(repository usersRepository, activity activityRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		activity:   activity,
		config:     cfg,
	}
}
