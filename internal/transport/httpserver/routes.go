package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"testtrack/internal/config"
	userdomain "testtrack/internal/domain/user"
	"testtrack/internal/transport/httpserver/handler"
	"testtrack/internal/transport/httpserver/middleware"
	"testtrack/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, sessions *middleware.Sessions, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORS.AllowedOrigins))

	r.Get("/ping", handlers.Common.Ping)

	managers := middleware.RequireRole(log, userdomain.RoleSupport, userdomain.RoleSuperadmin)
	testers := middleware.RequireRole(log, userdomain.RoleTester)
	superadmins := middleware.RequireRole(log, userdomain.RoleSuperadmin)

	r.Route("/api", func(r chi.Router) {
		r.NotFound(handlers.Common.NotFound)
		r.MethodNotAllowed(handlers.Common.MethodNotAllowed)

		r.Post("/auth/sign-in", handlers.Common.SignIn)
		r.Post("/auth/sign-out", handlers.Common.SignOut)

		r.Group(func(r chi.Router) {
			r.Use(sessions.Middleware)

			r.Get("/auth/me", handlers.Common.AuthMe)

			r.Route("/test-case", func(r chi.Router) {
				r.With(managers).Get("/", handlers.TestCases.ListTestCases)
				r.With(managers).Post("/", handlers.TestCases.CreateTestCase)
				r.With(testers).Get("/assigned-to-me", handlers.TestCases.ListAssignedToMe)
				r.Get("/{id}", handlers.TestCases.GetTestCase)
				r.Patch("/{id}", handlers.TestCases.UpdateTestCase)
			})

			r.With(managers).Get("/tester/short-info-list", handlers.Users.ListTesterShortInfo)

			r.Route("/admin", func(r chi.Router) {
				r.Use(superadmins)
				r.Get("/users", handlers.Users.ListUsers)
				r.Post("/users", handlers.Users.CreateUser)
			})
		})
	})

	if cfg.WebDistDir != "" {
		r.NotFound(spaHandler(cfg.WebDistDir))
	} else {
		r.NotFound(handlers.Common.NotFound)
	}
	r.MethodNotAllowed(handlers.Common.MethodNotAllowed)

	return r
}
