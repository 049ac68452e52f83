package user

import (
	"github.com/nbrandao/equidade/internal/result"
	"github.com/nbrandao/equidade/internal/webserver/model"
)

type usersRepository interface {
	List(page int, resultsPerPage int, filter string) (result.Paginated[[]model.User], error)
	FindByUuid(uuid string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	SetActive(uuid string, active bool) error
	ActiveAdmins() int64
}

type activityRepository interface {
	Record(adminID uint, action string, targetUserID *uint)
	List(page int, resultsPerPage int) (result.Paginated[[]model.Activity], error)
}

type Config struct {
	MinPasswordLength int
}

type Controller struct {
	repository usersRepository
	activity   activityRepository
	config     Config
}

// NewController returns a new instance of the users controller
func NewController(repository usersRepository, activity activityRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		activity:   activity,
		config:     cfg,
	}
}
