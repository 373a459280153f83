package testcase

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks testtrack/internal/domain/testcase Repository

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	NextTestCaseNumber(ctx context.Context) (int64, error)
	CreateTestCase(ctx context.Context, testCase *TestCase) error
	CreateAssignments(ctx context.Context, assignments []Assignment) error
	AppendTransitions(ctx context.Context, entries []TransitionLog) error
	GetTestCase(ctx context.Context, id string) (*TestCase, error)
	UpdateTestCase(ctx context.Context, id string, changes Changes) error
	CountAssignments(ctx context.Context, testCaseID, testerID string) (int64, error)
	CountTesters(ctx context.Context, userIDs []string) (int64, error)
	GetDetail(ctx context.Context, id string) (*Detail, error)
	ListGroupedByTester(ctx context.Context) ([]TesterWithTestCases, error)
	ListByTester(ctx context.Context, testerID string) ([]Summary, error)
}
