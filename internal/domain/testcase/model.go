package testcase

import (
	"time"

	"testtrack/internal/domain/user"
)

type TestCase struct {
	ID            string        `gorm:"primaryKey"`
	Title         string        `gorm:"not null"`
	Description   string        `gorm:"not null"`
	TesterUpdate  TesterStatus  `gorm:"column:tester_update;type:varchar(16);not null"`
	SupportUpdate SupportStatus `gorm:"column:support_update;type:varchar(32);not null"`
	CreatedBy     string        `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TestCase) TableName() string {
	return "test_cases"
}

type Assignment struct {
	TestCaseID string `gorm:"primaryKey"`
	TesterID   string `gorm:"primaryKey"`
}

func (Assignment) TableName() string {
	return "test_case_assignments"
}

// TransitionLog is an append-only history row. Seq breaks ties between
// entries written in the same instant.
type TransitionLog struct {
	Seq        int64            `gorm:"primaryKey;autoIncrement"`
	TestCaseID string           `gorm:"not null;index"`
	Status     TransitionStatus `gorm:"column:transition_status;type:varchar(32);not null"`
	At         time.Time        `gorm:"column:transition_at;not null"`
	By         string           `gorm:"column:transition_by;not null"`
	Comment    *string          `gorm:"column:transition_comment"`
}

func (TransitionLog) TableName() string {
	return "test_case_transition_logs"
}

// Actor is the authenticated caller of a workflow operation.
type Actor struct {
	ID   string
	Role user.Role
}

type Person struct {
	ID    string
	Name  string
	Email string
	Role  user.Role
}

type Summary struct {
	ID            string
	Title         string
	TesterUpdate  TesterStatus
	SupportUpdate SupportStatus
}

// Created is the result of Create: the new summary plus the deduplicated
// tester ids it was assigned to.
type Created struct {
	Summary
	TesterIDs []string
}

type TimelineEntry struct {
	Status  TransitionStatus
	At      time.Time
	By      Person
	Comment *string
}

type Detail struct {
	ID              string
	Title           string
	Description     string
	TesterUpdate    TesterStatus
	SupportUpdate   SupportStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CreatedBy       Person
	AssignedTesters []Person
	Timeline        []TimelineEntry
}

type TesterWithTestCases struct {
	ID        string
	Name      string
	Email     string
	TestCases []Summary
}

type CreateInput struct {
	Title       string
	Description string
	TesterIDs   []string
}

// Changes lists the columns an edit writes. Nil fields are left untouched.
type Changes struct {
	Title         *string
	Description   *string
	TesterUpdate  *TesterStatus
	SupportUpdate *SupportStatus
	UpdatedAt     time.Time
}
