package testcase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	testcasedomain "testtrack/internal/domain/testcase"
	userdomain "testtrack/internal/domain/user"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(testcasedomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) NextTestCaseNumber(ctx context.Context) (int64, error) {
	var number int64
	if err := r.db.WithContext(ctx).Raw("SELECT nextval('test_case_number_seq')").Scan(&number).Error; err != nil {
		return 0, err
	}
	return number, nil
}

func (r *PostgresRepository) CreateTestCase(ctx context.Context, testCase *testcasedomain.TestCase) error {
	return r.db.WithContext(ctx).Create(testCase).Error
}

func (r *PostgresRepository) CreateAssignments(ctx context.Context, assignments []testcasedomain.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&assignments).Error
}

func (r *PostgresRepository) AppendTransitions(ctx context.Context, entries []testcasedomain.TransitionLog) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *PostgresRepository) GetTestCase(ctx context.Context, id string) (*testcasedomain.TestCase, error) {
	var testCase testcasedomain.TestCase
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&testCase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, testcasedomain.ErrNotFound
		}
		return nil, err
	}
	return &testCase, nil
}

func (r *PostgresRepository) UpdateTestCase(ctx context.Context, id string, changes testcasedomain.Changes) error {
	updates := map[string]interface{}{
		"updated_at": changes.UpdatedAt,
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.TesterUpdate != nil {
		updates["tester_update"] = string(*changes.TesterUpdate)
	}
	if changes.SupportUpdate != nil {
		updates["support_update"] = string(*changes.SupportUpdate)
	}

	result := r.db.WithContext(ctx).
		Model(&testcasedomain.TestCase{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return testcasedomain.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountAssignments(ctx context.Context, testCaseID, testerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&testcasedomain.Assignment{}).
		Where("test_case_id = ? AND tester_id = ?", testCaseID, testerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) CountTesters(ctx context.Context, userIDs []string) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&userdomain.User{}).
		Where("id IN ? AND role = ?", userIDs, userdomain.RoleTester).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

const detailQuery = `
SELECT
	tc.id,
	tc.title,
	tc.description,
	tc.tester_update,
	tc.support_update,
	tc.created_at,
	tc.updated_at,
	json_build_object('id', cb.id, 'name', cb.name, 'email', cb.email, 'role', cb.role) AS created_by,
	COALESCE((
		SELECT json_agg(json_build_object('id', u.id, 'name', u.name, 'email', u.email, 'role', u.role) ORDER BY u.name)
		FROM test_case_assignments a
		JOIN users u ON u.id = a.tester_id
		WHERE a.test_case_id = tc.id AND u.role = 'tester'
	), '[]'::json) AS assigned_testers,
	COALESCE((
		SELECT json_agg(json_build_object(
			'status', l.transition_status,
			'at', l.transition_at,
			'comment', l.transition_comment,
			'by', json_build_object('id', u.id, 'name', u.name, 'email', u.email, 'role', u.role)
		) ORDER BY l.transition_at, l.seq)
		FROM test_case_transition_logs l
		JOIN users u ON u.id = l.transition_by
		WHERE l.test_case_id = tc.id
	), '[]'::json) AS timeline
FROM test_cases tc
JOIN users cb ON cb.id = tc.created_by
WHERE tc.id = ?
`

type detailRow struct {
	ID              string         `gorm:"column:id"`
	Title           string         `gorm:"column:title"`
	Description     string         `gorm:"column:description"`
	TesterUpdate    string         `gorm:"column:tester_update"`
	SupportUpdate   string         `gorm:"column:support_update"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	CreatedBy       datatypes.JSON `gorm:"column:created_by"`
	AssignedTesters datatypes.JSON `gorm:"column:assigned_testers"`
	Timeline        datatypes.JSON `gorm:"column:timeline"`
}

type personJSON struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p personJSON) toDomain() testcasedomain.Person {
	return testcasedomain.Person{ID: p.ID, Name: p.Name, Email: p.Email, Role: userdomain.Role(p.Role)}
}

type timelineJSON struct {
	Status  string     `json:"status"`
	At      time.Time  `json:"at"`
	Comment *string    `json:"comment"`
	By      personJSON `json:"by"`
}

// GetDetail loads the test case with its creator, assigned testers and
// timeline in a single round trip.
func (r *PostgresRepository) GetDetail(ctx context.Context, id string) (*testcasedomain.Detail, error) {
	var rows []detailRow
	if err := r.db.WithContext(ctx).Raw(detailQuery, id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, testcasedomain.ErrNotFound
	}
	row := rows[0]

	var createdBy personJSON
	if err := json.Unmarshal(row.CreatedBy, &createdBy); err != nil {
		return nil, fmt.Errorf("decode created_by: %w", err)
	}
	var testers []personJSON
	if err := json.Unmarshal(row.AssignedTesters, &testers); err != nil {
		return nil, fmt.Errorf("decode assigned_testers: %w", err)
	}
	var timeline []timelineJSON
	if err := json.Unmarshal(row.Timeline, &timeline); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	detail := &testcasedomain.Detail{
		ID:              row.ID,
		Title:           row.Title,
		Description:     row.Description,
		TesterUpdate:    testcasedomain.TesterStatus(row.TesterUpdate),
		SupportUpdate:   testcasedomain.SupportStatus(row.SupportUpdate),
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		CreatedBy:       createdBy.toDomain(),
		AssignedTesters: make([]testcasedomain.Person, 0, len(testers)),
		Timeline:        make([]testcasedomain.TimelineEntry, 0, len(timeline)),
	}
	for _, tester := range testers {
		detail.AssignedTesters = append(detail.AssignedTesters, tester.toDomain())
	}
	for _, entry := range timeline {
		detail.Timeline = append(detail.Timeline, testcasedomain.TimelineEntry{
			Status:  testcasedomain.TransitionStatus(entry.Status),
			At:      entry.At,
			By:      entry.By.toDomain(),
			Comment: entry.Comment,
		})
	}
	return detail, nil
}

type summaryRow struct {
	TesterID      string `gorm:"column:tester_id"`
	ID            string `gorm:"column:id"`
	Title         string `gorm:"column:title"`
	TesterUpdate  string `gorm:"column:tester_update"`
	SupportUpdate string `gorm:"column:support_update"`
}

func (row summaryRow) toDomain() testcasedomain.Summary {
	return testcasedomain.Summary{
		ID:            row.ID,
		Title:         row.Title,
		TesterUpdate:  testcasedomain.TesterStatus(row.TesterUpdate),
		SupportUpdate: testcasedomain.SupportStatus(row.SupportUpdate),
	}
}

func (r *PostgresRepository) assignedSummaries(ctx context.Context, testerID string) ([]summaryRow, error) {
	query := r.db.WithContext(ctx).
		Table("test_case_assignments").
		Select("test_case_assignments.tester_id, test_cases.id, test_cases.title, test_cases.tester_update, test_cases.support_update").
		Joins("join test_cases on test_cases.id = test_case_assignments.test_case_id").
		Order("test_cases.created_at desc, test_cases.id desc")
	if testerID != "" {
		query = query.Where("test_case_assignments.tester_id = ?", testerID)
	}

	var rows []summaryRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListGroupedByTester returns every tester ordered by name, including
// testers without assignments.
func (r *PostgresRepository) ListGroupedByTester(ctx context.Context) ([]testcasedomain.TesterWithTestCases, error) {
	var testers []userdomain.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", userdomain.RoleTester).
		Order("name asc, created_at asc").
		Find(&testers).Error; err != nil {
		return nil, err
	}

	rows, err := r.assignedSummaries(ctx, "")
	if err != nil {
		return nil, err
	}
	byTester := make(map[string][]testcasedomain.Summary, len(testers))
	for _, row := range rows {
		byTester[row.TesterID] = append(byTester[row.TesterID], row.toDomain())
	}

	result := make([]testcasedomain.TesterWithTestCases, 0, len(testers))
	for _, tester := range testers {
		summaries := byTester[tester.ID]
		if summaries == nil {
			summaries = []testcasedomain.Summary{}
		}
		result = append(result, testcasedomain.TesterWithTestCases{
			ID:        tester.ID,
			Name:      tester.Name,
			Email:     tester.Email,
			TestCases: summaries,
		})
	}
	return result, nil
}

func (r *PostgresRepository) ListByTester(ctx context.Context, testerID string) ([]testcasedomain.Summary, error) {
	rows, err := r.assignedSummaries(ctx, testerID)
	if err != nil {
		return nil, err
	}
	result := make([]testcasedomain.Summary, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toDomain())
	}
	return result, nil
}
