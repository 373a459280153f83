package handler

import (
	"testtrack/internal/transport/httpserver/handler/common"
	"testtrack/internal/transport/httpserver/handler/testcases"
	"testtrack/internal/transport/httpserver/handler/users"
)

type Handlers struct {
	Common    *common.Handlers
	TestCases *testcases.Handlers
	Users     *users.Handlers
}

func New(commonHandlers *common.Handlers, testCaseHandlers *testcases.Handlers, userHandlers *users.Handlers) *Handlers {
	return &Handlers{
		Common:    commonHandlers,
		TestCases: testCaseHandlers,
		Users:     userHandlers,
	}
}
