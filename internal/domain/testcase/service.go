package testcase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"testtrack/internal/domain/user"
)

const testCaseIDPrefix = "TC-"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create inserts the test case, its assignments and the initiated log entry
// in one transaction.
func (s *Service) Create(ctx context.Context, actor Actor, input CreateInput) (*Created, error) {
	if !actor.Role.CanManageTestCases() {
		return nil, fmt.Errorf("%w: role %s cannot create test cases", ErrForbidden, actor.Role)
	}

	title := SentenceCase(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	testerIDs := uniqueIDs(input.TesterIDs)
	if len(testerIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one tester is required", ErrValidation)
	}

	now := s.now()
	testCase := TestCase{
		Title:         title,
		Description:   input.Description,
		TesterUpdate:  TesterPending,
		SupportUpdate: SupportPendingValidation,
		CreatedBy:     actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		count, err := tx.CountTesters(ctx, testerIDs)
		if err != nil {
			return err
		}
		if count != int64(len(testerIDs)) {
			return fmt.Errorf("%w: every assignee must be an existing tester", ErrValidation)
		}

		number, err := tx.NextTestCaseNumber(ctx)
		if err != nil {
			return err
		}
		testCase.ID = FormatID(number)

		if err := tx.CreateTestCase(ctx, &testCase); err != nil {
			return err
		}

		assignments := make([]Assignment, 0, len(testerIDs))
		for _, testerID := range testerIDs {
			assignments = append(assignments, Assignment{TestCaseID: testCase.ID, TesterID: testerID})
		}
		if err := tx.CreateAssignments(ctx, assignments); err != nil {
			return err
		}

		return tx.AppendTransitions(ctx, []TransitionLog{{
			TestCaseID: testCase.ID,
			Status:     TransitionInitiated,
			At:         now,
			By:         actor.ID,
		}})
	})
	if err != nil {
		return nil, err
	}

	return &Created{
		Summary: Summary{
			ID:            testCase.ID,
			Title:         testCase.Title,
			TesterUpdate:  testCase.TesterUpdate,
			SupportUpdate: testCase.SupportUpdate,
		},
		TesterIDs: testerIDs,
	}, nil
}

// Edit applies one action. The role and assignment checks run first, then the
// existence check, then a single transaction that updates the row and appends
// the matching log entries. The refreshed detail is returned.
func (s *Service) Edit(ctx context.Context, actor Actor, id string, action Action) (*Detail, error) {
	if err := s.authorizeEdit(ctx, actor, id, action); err != nil {
		return nil, err
	}

	now := s.now()
	changes, entries, err := planEdit(action, now)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetTestCase(ctx, id); err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].TestCaseID = id
		entries[i].By = actor.ID
	}

	err = s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.UpdateTestCase(ctx, id, changes); err != nil {
			return err
		}
		return tx.AppendTransitions(ctx, entries)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetDetail(ctx, id)
}

func (s *Service) authorizeEdit(ctx context.Context, actor Actor, id string, action Action) error {
	switch action.(type) {
	case EditContent, SupportUpdate:
		if !actor.Role.CanManageTestCases() {
			return fmt.Errorf("%w: role %s cannot edit test cases", ErrForbidden, actor.Role)
		}
		return nil
	case TesterUpdate:
		if actor.Role != user.RoleTester {
			return fmt.Errorf("%w: only testers can update tester status", ErrForbidden)
		}
		return s.requireAssignment(ctx, actor, id)
	default:
		return fmt.Errorf("%w: unknown action %T", ErrValidation, action)
	}
}

func planEdit(action Action, now time.Time) (Changes, []TransitionLog, error) {
	changes := Changes{UpdatedAt: now}

	switch a := action.(type) {
	case EditContent:
		title := SentenceCase(a.Title)
		if title == "" {
			return Changes{}, nil, fmt.Errorf("%w: title is required", ErrValidation)
		}
		description := a.Description
		changes.Title = &title
		changes.Description = &description

		entries := []TransitionLog{{Status: TransitionEdited, At: now}}
		if a.SupportUpdate != nil {
			status := *a.SupportUpdate
			if !status.Valid() {
				return Changes{}, nil, fmt.Errorf("%w: unknown support status %q", ErrValidation, status)
			}
			applySupportStatus(&changes, status)
			entries = append(entries, TransitionLog{Status: supportTransition(status), At: now})
		}
		return changes, entries, nil

	case SupportUpdate:
		if !a.Status.Valid() {
			return Changes{}, nil, fmt.Errorf("%w: unknown support status %q", ErrValidation, a.Status)
		}
		applySupportStatus(&changes, a.Status)
		return changes, []TransitionLog{{Status: supportTransition(a.Status), At: now, Comment: optional(a.Comment)}}, nil

	case TesterUpdate:
		if !a.Status.Valid() {
			return Changes{}, nil, fmt.Errorf("%w: unknown tester status %q", ErrValidation, a.Status)
		}
		status := a.Status
		changes.TesterUpdate = &status
		return changes, []TransitionLog{{Status: testerTransition(a.Status), At: now, Comment: optional(a.Comment)}}, nil

	default:
		return Changes{}, nil, fmt.Errorf("%w: unknown action %T", ErrValidation, action)
	}
}

// applySupportStatus sets the support status. A retest always sends the
// tester back to pending.
func applySupportStatus(changes *Changes, status SupportStatus) {
	changes.SupportUpdate = &status
	if status == SupportRetest {
		pending := TesterPending
		changes.TesterUpdate = &pending
	}
}

// GetDetail returns the full test case. Testers only see test cases assigned
// to them; the assignment check runs before the existence check.
func (s *Service) GetDetail(ctx context.Context, actor Actor, id string) (*Detail, error) {
	switch {
	case actor.Role.CanManageTestCases():
	case actor.Role == user.RoleTester:
		if err := s.requireAssignment(ctx, actor, id); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
	}

	return s.repo.GetDetail(ctx, id)
}

func (s *Service) ListGroupedByTester(ctx context.Context, actor Actor) ([]TesterWithTestCases, error) {
	if !actor.Role.CanManageTestCases() {
		return nil, fmt.Errorf("%w: role %s cannot list all test cases", ErrForbidden, actor.Role)
	}
	return s.repo.ListGroupedByTester(ctx)
}

func (s *Service) ListForTester(ctx context.Context, actor Actor) ([]Summary, error) {
	if actor.Role != user.RoleTester {
		return nil, fmt.Errorf("%w: only testers have assigned test cases", ErrForbidden)
	}
	return s.repo.ListByTester(ctx, actor.ID)
}

func (s *Service) requireAssignment(ctx context.Context, actor Actor, id string) error {
	count, err := s.repo.CountAssignments(ctx, id, actor.ID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: test case %s is not assigned to you", ErrForbidden, id)
	}
	return nil
}

// FormatID renders a sequence number as a test case id, e.g. TC-00042.
func FormatID(number int64) string {
	return fmt.Sprintf("%s%05d", testCaseIDPrefix, number)
}

func uniqueIDs(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		id := strings.TrimSpace(value)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
