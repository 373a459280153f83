package common

import (
	"context"

	userdomain "testtrack/internal/domain/user"
	"testtrack/internal/transport/httpserver/middleware"
	"testtrack/pkg/logger"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Users    *userdomain.Service
	Sessions *middleware.Sessions
	db       Pinger
	log      logger.Logger
}

func New(users *userdomain.Service, sessions *middleware.Sessions, db Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		Users:    users,
		Sessions: sessions,
		db:       db,
		log:      log,
	}
}
