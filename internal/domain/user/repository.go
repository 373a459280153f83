package user

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks testtrack/internal/domain/user Repository

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]User, error)
	ListTesters(ctx context.Context) ([]TesterInfo, error)
}
