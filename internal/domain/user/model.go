package user

import "time"

type Role string

const (
	RoleTester     Role = "tester"
	RoleSupport    Role = "support"
	RoleSuperadmin Role = "superadmin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTester, RoleSupport, RoleSuperadmin:
		return true
	}
	return false
}

// CanManageTestCases reports whether the role may create, edit and triage test cases.
func (r Role) CanManageTestCases() bool {
	return r == RoleSupport || r == RoleSuperadmin
}

type User struct {
	ID           string    `gorm:"primaryKey"`
	Name         string    `gorm:"not null"`
	Email        string    `gorm:"not null;uniqueIndex"`
	Role         Role      `gorm:"type:varchar(16);not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TesterInfo is the short form used by assignment pickers.
type TesterInfo struct {
	ID    string
	Name  string
	Email string
}

type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
}
