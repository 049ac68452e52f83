package auth

import (
	"time"

	"github.com/nbrandao/equidade/internal/webserver/model"
)

type usersRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
}

type invitesRepository interface {
	Redeem(tokenString string, user *model.User) (*model.InviteToken, error)
}

type pendingAuthRepository interface {
	Create(pending *model.PendingAuth) error
	FindByUuid(uuid string) (*model.PendingAuth, error)
	Delete(uuid string) error
}

type activityRepository interface {
	Record(adminID uint, action string, targetUserID *uint)
}

type Config struct {
	Secret             []byte
	MinPasswordLength  int
	SessionTimeout     time.Duration
	PendingAuthTimeout time.Duration
}

type Controller struct {
	repository  usersRepository
	invites     invitesRepository
	pendingAuth pendingAuthRepository
	activity    activityRepository
	config      Config
}

func NewController(repository usersRepository, invites invitesRepository, pendingAuth pendingAuthRepository, activity activityRepository, cfg Config) *Controller {
	return &Controller{
		repository:  repository,
		invites:     invites,
		pendingAuth: pendingAuth,
		activity:    activity,
		config:      cfg,
	}
}
