package testcases

import (
	testcasedomain "testtrack/internal/domain/testcase"
	"testtrack/pkg/logger"
)

type Handlers struct {
	TestCases *testcasedomain.Service
	log       logger.Logger
}

func New(testCases *testcasedomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		TestCases: testCases,
		log:       log,
	}
}
