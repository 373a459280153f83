package testcase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testtrack/internal/domain/user"
)

var (
	supportActor    = Actor{ID: "s1", Role: user.RoleSupport}
	superadminActor = Actor{ID: "a1", Role: user.RoleSuperadmin}
	tester1         = Actor{ID: "t1", Role: user.RoleTester}
	tester2         = Actor{ID: "t2", Role: user.RoleTester}
)

func newTestService(t *testing.T) (*Service, *fakeTestCaseRepo) {
	t.Helper()
	repo := newFakeTestCaseRepo()
	repo.addUser("s1", user.RoleSupport)
	repo.addUser("a1", user.RoleSuperadmin)
	repo.addUser("t1", user.RoleTester)
	repo.addUser("t2", user.RoleTester)

	svc := NewService(repo)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, repo
}

func createTestCase(t *testing.T, svc *Service, testerIDs ...string) *Summary {
	t.Helper()
	created, err := svc.Create(context.Background(), supportActor, CreateInput{
		Title:       "fix login bug",
		Description: "<p>steps</p>",
		TesterIDs:   testerIDs,
	})
	require.NoError(t, err)
	return &created.Summary
}

func TestCreateRoundTrip(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	summary := createTestCase(t, svc, "t1")
	assert.Equal(t, "TC-00001", summary.ID)
	assert.Equal(t, "Fix login bug", summary.Title)

	detail, err := svc.GetDetail(ctx, supportActor, summary.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix login bug", detail.Title)
	assert.Equal(t, "<p>steps</p>", detail.Description)
	assert.Equal(t, TesterPending, detail.TesterUpdate)
	assert.Equal(t, SupportPendingValidation, detail.SupportUpdate)
	assert.Equal(t, "s1", detail.CreatedBy.ID)
	require.Len(t, detail.AssignedTesters, 1)
	assert.Equal(t, "t1", detail.AssignedTesters[0].ID)

	logs := repo.logsFor(summary.ID)
	require.Len(t, logs, 1)
	assert.Equal(t, TransitionInitiated, logs[0].Status)
	assert.Equal(t, "s1", logs[0].By)
}

func TestCreateAllocatesSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t)

	first := createTestCase(t, svc, "t1")
	second := createTestCase(t, svc, "t2")
	assert.Equal(t, "TC-00001", first.ID)
	assert.Equal(t, "TC-00002", second.ID)
}

func TestCreateDeduplicatesTesters(t *testing.T) {
	svc, repo := newTestService(t)

	created, err := svc.Create(context.Background(), supportActor, CreateInput{
		Title:     "fix login bug",
		TesterIDs: []string{"t1", " t1 ", "t2", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, created.TesterIDs)
	assert.ElementsMatch(t, []string{"t1", "t2"}, repo.assignments[created.ID])
}

func TestCreateValidation(t *testing.T) {
	cases := []struct {
		name  string
		input CreateInput
	}{
		{"no testers", CreateInput{Title: "Title"}},
		{"blank tester ids", CreateInput{Title: "Title", TesterIDs: []string{" ", ""}}},
		{"blank title", CreateInput{Title: "   ", TesterIDs: []string{"t1"}}},
		{"unknown tester", CreateInput{Title: "Title", TesterIDs: []string{"t1", "ghost"}}},
		{"assignee is not a tester", CreateInput{Title: "Title", TesterIDs: []string{"s1"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			_, err := svc.Create(context.Background(), supportActor, tc.input)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.testCases)
			assert.Empty(t, repo.logs)
		})
	}
}

func TestCreateRequiresSupportOrSuperadmin(t *testing.T) {
	svc, repo := newTestService(t)

	_, err := svc.Create(context.Background(), tester1, CreateInput{Title: "x", TesterIDs: []string{"t1"}})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Create(context.Background(), superadminActor, CreateInput{Title: "x", TesterIDs: []string{"t1"}})
	assert.NoError(t, err)
	assert.Len(t, repo.testCases, 1)
}

func TestCreateRollsBackWhenLogAppendFails(t *testing.T) {
	svc, repo := newTestService(t)
	repo.failAppend = errBoom

	_, err := svc.Create(context.Background(), supportActor, CreateInput{Title: "x", TesterIDs: []string{"t1"}})
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, repo.testCases)
	assert.Empty(t, repo.assignments)
	assert.Empty(t, repo.logs)
}

func TestSupportUpdateRetestResetsTester(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(ctx, tester1, summary.ID, TesterUpdate{Status: TesterComplete})
	require.NoError(t, err)
	assert.Equal(t, TesterComplete, repo.testCases[summary.ID].TesterUpdate)

	before := len(repo.logsFor(summary.ID))
	detail, err := svc.Edit(ctx, supportActor, summary.ID, SupportUpdate{Status: SupportRetest})
	require.NoError(t, err)

	assert.Equal(t, TesterPending, detail.TesterUpdate)
	assert.Equal(t, SupportRetest, detail.SupportUpdate)

	logs := repo.logsFor(summary.ID)
	require.Len(t, logs, before+1)
	assert.Equal(t, TransitionStatus("retest"), logs[len(logs)-1].Status)
}

func TestSupportUpdateOtherStatusKeepsTester(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(ctx, tester1, summary.ID, TesterUpdate{Status: TesterComplete})
	require.NoError(t, err)

	for _, status := range []SupportStatus{SupportPassed, SupportFailed, SupportComplete, SupportNA, SupportPendingValidation} {
		detail, err := svc.Edit(ctx, superadminActor, summary.ID, SupportUpdate{Status: status, Comment: "  checked  "})
		require.NoError(t, err)
		assert.Equal(t, TesterComplete, detail.TesterUpdate, "status %s", status)
		assert.Equal(t, status, detail.SupportUpdate)
	}

	logs := repo.logsFor(summary.ID)
	last := logs[len(logs)-1]
	require.NotNil(t, last.Comment)
	assert.Equal(t, "checked", *last.Comment)
}

func TestSupportUpdateIsAppendOnly(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	for i := 0; i < 2; i++ {
		_, err := svc.Edit(ctx, supportActor, summary.ID, SupportUpdate{Status: SupportPassed})
		require.NoError(t, err)
	}

	logs := repo.logsFor(summary.ID)
	require.Len(t, logs, 3)
	assert.Equal(t, TransitionStatus("passed"), logs[1].Status)
	assert.Equal(t, TransitionStatus("passed"), logs[2].Status)
	assert.Less(t, logs[1].Seq, logs[2].Seq)
}

func TestEditContentLogsOneOrTwoEntries(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	detail, err := svc.Edit(ctx, supportActor, summary.ID, EditContent{Title: "  new   TITLE for API ", Description: "<p>v2</p>"})
	require.NoError(t, err)
	assert.Equal(t, "New TITLE for API", detail.Title)
	assert.Equal(t, "<p>v2</p>", detail.Description)
	assert.Equal(t, SupportPendingValidation, detail.SupportUpdate)

	logs := repo.logsFor(summary.ID)
	require.Len(t, logs, 2)
	assert.Equal(t, TransitionEdited, logs[1].Status)

	failed := SupportFailed
	detail, err = svc.Edit(ctx, superadminActor, summary.ID, EditContent{Title: "again", Description: "", SupportUpdate: &failed})
	require.NoError(t, err)
	assert.Equal(t, SupportFailed, detail.SupportUpdate)

	logs = repo.logsFor(summary.ID)
	require.Len(t, logs, 4)
	assert.Equal(t, TransitionEdited, logs[2].Status)
	assert.Equal(t, TransitionStatus("failed"), logs[3].Status)
	assert.Less(t, logs[2].Seq, logs[3].Seq)
}

func TestEditContentWithRetestResetsTester(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(ctx, tester1, summary.ID, TesterUpdate{Status: TesterComplete})
	require.NoError(t, err)

	retest := SupportRetest
	detail, err := svc.Edit(ctx, supportActor, summary.ID, EditContent{Title: "t", SupportUpdate: &retest})
	require.NoError(t, err)
	assert.Equal(t, TesterPending, detail.TesterUpdate)
}

func TestEditContentRejectsTester(t *testing.T) {
	svc, repo := newTestService(t)
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(context.Background(), tester1, summary.ID, EditContent{Title: "hijack"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "Fix login bug", repo.testCases[summary.ID].Title)

	_, err = svc.Edit(context.Background(), tester1, summary.ID, SupportUpdate{Status: SupportPassed})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTesterUpdateByUnassignedTester(t *testing.T) {
	svc, repo := newTestService(t)
	summary := createTestCase(t, svc, "t1")
	before := *repo.testCases[summary.ID]
	logsBefore := len(repo.logs)

	_, err := svc.Edit(context.Background(), tester2, summary.ID, TesterUpdate{Status: TesterComplete})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, before, *repo.testCases[summary.ID])
	assert.Len(t, repo.logs, logsBefore)
}

func TestTesterUpdateRejectsSupport(t *testing.T) {
	svc, _ := newTestService(t)
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(context.Background(), supportActor, summary.ID, TesterUpdate{Status: TesterComplete})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestTesterUpdateLogsTesterStatus(t *testing.T) {
	svc, repo := newTestService(t)
	summary := createTestCase(t, svc, "t1", "t2")

	detail, err := svc.Edit(context.Background(), tester2, summary.ID, TesterUpdate{Status: TesterComplete, Comment: "done"})
	require.NoError(t, err)
	assert.Equal(t, TesterComplete, detail.TesterUpdate)

	logs := repo.logsFor(summary.ID)
	require.Len(t, logs, 2)
	assert.Equal(t, TransitionStatus("complete"), logs[1].Status)
	assert.Equal(t, "t2", logs[1].By)
	require.NotNil(t, logs[1].Comment)
	assert.Equal(t, "done", *logs[1].Comment)
}

func TestEditAuthorizationPrecedesExistence(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Edit(context.Background(), tester1, "TC-99999", TesterUpdate{Status: TesterComplete})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Edit(context.Background(), supportActor, "TC-99999", SupportUpdate{Status: SupportPassed})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEditRejectsInvalidPayload(t *testing.T) {
	svc, repo := newTestService(t)
	summary := createTestCase(t, svc, "t1")
	ctx := context.Background()

	bogus := SupportStatus("shipped")
	cases := []struct {
		name   string
		actor  Actor
		action Action
	}{
		{"nil action", supportActor, nil},
		{"bad support status", supportActor, SupportUpdate{Status: "shipped"}},
		{"bad tester status", tester1, TesterUpdate{Status: "started"}},
		{"blank title", supportActor, EditContent{Title: " "}},
		{"bad inline support status", supportActor, EditContent{Title: "ok", SupportUpdate: &bogus}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Edit(ctx, tc.actor, summary.ID, tc.action)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
	assert.Len(t, repo.logsFor(summary.ID), 1)
}

func TestEditRollsBackOnFailure(t *testing.T) {
	svc, repo := newTestService(t)
	summary := createTestCase(t, svc, "t1")
	repo.failAppend = errBoom

	_, err := svc.Edit(context.Background(), supportActor, summary.ID, SupportUpdate{Status: SupportRetest})
	assert.True(t, errors.Is(err, errBoom))
	assert.Equal(t, SupportPendingValidation, repo.testCases[summary.ID].SupportUpdate)
	assert.Len(t, repo.logsFor(summary.ID), 1)
}

func TestGetDetailAccess(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	_, err := svc.GetDetail(ctx, tester1, summary.ID)
	assert.NoError(t, err)

	_, err = svc.GetDetail(ctx, tester2, summary.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetDetail(ctx, superadminActor, summary.ID)
	assert.NoError(t, err)

	_, err = svc.GetDetail(ctx, supportActor, "TC-00404")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetDetail(ctx, Actor{ID: "x", Role: "guest"}, summary.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDetailTimelineIsOrdered(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	summary := createTestCase(t, svc, "t1")

	_, err := svc.Edit(ctx, tester1, summary.ID, TesterUpdate{Status: TesterComplete})
	require.NoError(t, err)
	detail, err := svc.Edit(ctx, supportActor, summary.ID, SupportUpdate{Status: SupportPassed})
	require.NoError(t, err)

	statuses := make([]TransitionStatus, 0, len(detail.Timeline))
	for i, entry := range detail.Timeline {
		statuses = append(statuses, entry.Status)
		if i > 0 {
			assert.False(t, entry.At.Before(detail.Timeline[i-1].At))
		}
	}
	assert.Equal(t, []TransitionStatus{"initiated", "complete", "passed"}, statuses)
}

func TestListGroupedByTester(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createTestCase(t, svc, "t1")
	createTestCase(t, svc, "t1", "t2")

	groups, err := svc.ListGroupedByTester(ctx, supportActor)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "t1", groups[0].ID)
	assert.Len(t, groups[0].TestCases, 2)
	assert.Len(t, groups[1].TestCases, 1)

	_, err = svc.ListGroupedByTester(ctx, tester1)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListForTester(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	createTestCase(t, svc, "t1")
	second := createTestCase(t, svc, "t2")

	mine, err := svc.ListForTester(ctx, tester2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, second.ID, mine[0].ID)

	_, err = svc.ListForTester(ctx, supportActor)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "TC-00001", FormatID(1))
	assert.Equal(t, "TC-12345", FormatID(12345))
	assert.Equal(t, "TC-123456", FormatID(123456))
}
