package users

import (
	userdomain "testtrack/internal/domain/user"
	"testtrack/pkg/logger"
)

type Handlers struct {
	Users *userdomain.Service
	log   logger.Logger
}

func New(users *userdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Users: users,
		log:   log,
	}
}
