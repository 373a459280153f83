package app

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"testtrack/internal/config"
	"testtrack/internal/db"
	testcasedomain "testtrack/internal/domain/testcase"
	userdomain "testtrack/internal/domain/user"
	"testtrack/internal/repository/inmemory"
	testcaserepo "testtrack/internal/repository/postgres/testcase"
	userrepo "testtrack/internal/repository/postgres/user"
	"testtrack/internal/transport/httpserver"
	"testtrack/internal/transport/httpserver/handler"
	"testtrack/internal/transport/httpserver/handler/common"
	"testtrack/internal/transport/httpserver/handler/testcases"
	"testtrack/internal/transport/httpserver/handler/users"
	"testtrack/internal/transport/httpserver/middleware"
	"testtrack/pkg/logger"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB

	Users     *userdomain.Service
	TestCases *testcasedomain.Service
}

type dbPinger struct {
	db *gorm.DB
}

func (p dbPinger) Ping(ctx context.Context) error {
	return db.Ping(ctx, p.db)
}

func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing services")
	userService := userdomain.NewService(userrepo.NewPostgres(dbConn)).
		WithDirectoryCache(inmemory.NewInMemoryTesterDirectory(), cfg.TesterCacheTTL)
	testCaseService := testcasedomain.NewService(testcaserepo.NewPostgres(dbConn))

	log.Info("app: initializing router")
	sessions := middleware.NewSessions(cfg.Session, userService, log)
	handlers := handler.New(
		common.New(userService, sessions, dbPinger{db: dbConn}, log),
		testcases.New(testCaseService, log),
		users.New(userService, log),
	)
	router := httpserver.NewRouter(cfg, handlers, sessions, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		db:         dbConn,
		Users:      userService,
		TestCases:  testCaseService,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Migrate() (int, error) {
	return db.Migrate(a.db, a.log)
}

func (a *App) Close() error {
	return db.Close(a.db)
}
