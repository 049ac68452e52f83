package invite

import (
	"time"

	"github.com/nbrandao/equidade/internal/webserver/model"
)

type Sender interface {
	From() string
	Send(address, subject, body string) error
}

type invitesRepository interface {
	Create(invite *model.InviteToken) error
	List() ([]model.InviteToken, error)
}

type activityRepository interface {
	Record(adminID uint, action string, targetUserID *uint)
}

type Config struct {
	InviteTimeout time.Duration
	FQDN          string
}

type Controller struct {
	repository invitesRepository
	activity   activityRepository
	sender     Sender
	config     Config
}

func NewController(repository invitesRepository, activity activityRepository, sender Sender, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		activity:   activity,
		sender:     sender,
		config:     cfg,
	}
}
