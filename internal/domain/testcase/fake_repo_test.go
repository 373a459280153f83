package testcase

import (
	"context"
	"errors"
	"sort"

	"testtrack/internal/domain/user"
)

type fakeTestCaseRepo struct {
	users       map[string]user.User
	testCases   map[string]*TestCase
	assignments map[string][]string
	logs        []TransitionLog
	seq         int64
	number      int64

	failAppend error
	failUpdate error
}

func newFakeTestCaseRepo() *fakeTestCaseRepo {
	return &fakeTestCaseRepo{
		users:       make(map[string]user.User),
		testCases:   make(map[string]*TestCase),
		assignments: make(map[string][]string),
	}
}

func (r *fakeTestCaseRepo) addUser(id string, role user.Role) {
	r.users[id] = user.User{ID: id, Name: "User " + id, Email: id + "@example.com", Role: role}
}

// Transaction restores the previous state when fn fails.
func (r *fakeTestCaseRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	testCases := make(map[string]*TestCase, len(r.testCases))
	for id, tc := range r.testCases {
		copied := *tc
		testCases[id] = &copied
	}
	assignments := make(map[string][]string, len(r.assignments))
	for id, testers := range r.assignments {
		assignments[id] = append([]string(nil), testers...)
	}
	logs := append([]TransitionLog(nil), r.logs...)
	seq, number := r.seq, r.number

	if err := fn(r); err != nil {
		r.testCases, r.assignments, r.logs, r.seq, r.number = testCases, assignments, logs, seq, number
		return err
	}
	return nil
}

func (r *fakeTestCaseRepo) NextTestCaseNumber(ctx context.Context) (int64, error) {
	r.number++
	return r.number, nil
}

func (r *fakeTestCaseRepo) CreateTestCase(ctx context.Context, testCase *TestCase) error {
	copied := *testCase
	r.testCases[testCase.ID] = &copied
	return nil
}

func (r *fakeTestCaseRepo) CreateAssignments(ctx context.Context, assignments []Assignment) error {
	for _, a := range assignments {
		r.assignments[a.TestCaseID] = append(r.assignments[a.TestCaseID], a.TesterID)
	}
	return nil
}

func (r *fakeTestCaseRepo) AppendTransitions(ctx context.Context, entries []TransitionLog) error {
	if r.failAppend != nil {
		return r.failAppend
	}
	for _, entry := range entries {
		r.seq++
		entry.Seq = r.seq
		r.logs = append(r.logs, entry)
	}
	return nil
}

func (r *fakeTestCaseRepo) GetTestCase(ctx context.Context, id string) (*TestCase, error) {
	tc, ok := r.testCases[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *tc
	return &copied, nil
}

func (r *fakeTestCaseRepo) UpdateTestCase(ctx context.Context, id string, changes Changes) error {
	if r.failUpdate != nil {
		return r.failUpdate
	}
	tc, ok := r.testCases[id]
	if !ok {
		return ErrNotFound
	}
	if changes.Title != nil {
		tc.Title = *changes.Title
	}
	if changes.Description != nil {
		tc.Description = *changes.Description
	}
	if changes.TesterUpdate != nil {
		tc.TesterUpdate = *changes.TesterUpdate
	}
	if changes.SupportUpdate != nil {
		tc.SupportUpdate = *changes.SupportUpdate
	}
	tc.UpdatedAt = changes.UpdatedAt
	return nil
}

func (r *fakeTestCaseRepo) CountAssignments(ctx context.Context, testCaseID, testerID string) (int64, error) {
	var count int64
	for _, id := range r.assignments[testCaseID] {
		if id == testerID {
			count++
		}
	}
	return count, nil
}

func (r *fakeTestCaseRepo) CountTesters(ctx context.Context, userIDs []string) (int64, error) {
	var count int64
	for _, id := range userIDs {
		if u, ok := r.users[id]; ok && u.Role == user.RoleTester {
			count++
		}
	}
	return count, nil
}

func (r *fakeTestCaseRepo) person(id string) Person {
	u := r.users[id]
	return Person{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

func (r *fakeTestCaseRepo) GetDetail(ctx context.Context, id string) (*Detail, error) {
	tc, ok := r.testCases[id]
	if !ok {
		return nil, ErrNotFound
	}
	detail := &Detail{
		ID:              tc.ID,
		Title:           tc.Title,
		Description:     tc.Description,
		TesterUpdate:    tc.TesterUpdate,
		SupportUpdate:   tc.SupportUpdate,
		CreatedAt:       tc.CreatedAt,
		UpdatedAt:       tc.UpdatedAt,
		CreatedBy:       r.person(tc.CreatedBy),
		AssignedTesters: []Person{},
		Timeline:        []TimelineEntry{},
	}
	for _, testerID := range r.assignments[id] {
		detail.AssignedTesters = append(detail.AssignedTesters, r.person(testerID))
	}
	for _, entry := range r.logs {
		if entry.TestCaseID != id {
			continue
		}
		detail.Timeline = append(detail.Timeline, TimelineEntry{
			Status:  entry.Status,
			At:      entry.At,
			By:      r.person(entry.By),
			Comment: entry.Comment,
		})
	}
	return detail, nil
}

func (r *fakeTestCaseRepo) ListGroupedByTester(ctx context.Context) ([]TesterWithTestCases, error) {
	result := make([]TesterWithTestCases, 0)
	for _, u := range r.users {
		if u.Role != user.RoleTester {
			continue
		}
		summaries, _ := r.ListByTester(ctx, u.ID)
		result = append(result, TesterWithTestCases{ID: u.ID, Name: u.Name, Email: u.Email, TestCases: summaries})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *fakeTestCaseRepo) ListByTester(ctx context.Context, testerID string) ([]Summary, error) {
	result := make([]Summary, 0)
	for id, testers := range r.assignments {
		for _, assigned := range testers {
			if assigned != testerID {
				continue
			}
			tc := r.testCases[id]
			result = append(result, Summary{ID: tc.ID, Title: tc.Title, TesterUpdate: tc.TesterUpdate, SupportUpdate: tc.SupportUpdate})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeTestCaseRepo) logsFor(id string) []TransitionLog {
	result := make([]TransitionLog, 0)
	for _, entry := range r.logs {
		if entry.TestCaseID == id {
			result = append(result, entry)
		}
	}
	return result
}

var errBoom = errors.New("boom")
