package testcases

import (
	"net/http"

	testcasedomain "testtrack/internal/domain/testcase"
	commonhandler "testtrack/internal/transport/httpserver/handler/common"
	"testtrack/internal/transport/httpserver/middleware"
	"testtrack/pkg/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	commonhandler.WriteJSON(w, status, payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	return commonhandler.DecodeJSON(r, dst)
}

func writeDomainError(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	commonhandler.WriteDomainError(w, log, op, err, args...)
}

func actorFromRequest(w http.ResponseWriter, r *http.Request) (testcasedomain.Actor, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		commonhandler.WriteError(w, http.StatusUnauthorized, "Unauthorized", "")
		return testcasedomain.Actor{}, false
	}
	return testcasedomain.Actor{ID: user.ID, Role: user.Role}, true
}
