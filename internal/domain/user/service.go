package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

type Service struct {
	repo     Repository
	cost     int
	cache    DirectoryCache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost, cache: noopDirectoryCache{}}
}

// WithDirectoryCache keeps the tester list for ttl. Creating a user clears it.
func (s *Service) WithDirectoryCache(cache DirectoryCache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		s.cache = noopDirectoryCache{}
		s.cacheTTL = 0
		return s
	}
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *Service) WithHashCost(cost int) *Service {
	s.cost = cost
	return s
}

// Create registers an account on behalf of a superadmin. The role given here
// is final: no operation changes it afterwards.
func (s *Service) Create(ctx context.Context, actor Role, input CreateInput) (*User, error) {
	if actor != RoleSuperadmin {
		return nil, fmt.Errorf("%w: only superadmins can create users", ErrForbidden)
	}
	return s.create(ctx, input)
}

// Bootstrap creates an account without an acting user. It backs the
// create-admin and seed commands and is not reachable over HTTP.
func (s *Service) Bootstrap(ctx context.Context, input CreateInput) (*User, error) {
	return s.create(ctx, input)
}

func (s *Service) create(ctx context.Context, input CreateInput) (*User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	role := input.Role
	if role == "" {
		role = RoleTester
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, input.Role)
	}

	taken, err := s.repo.IsEmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, err
	}
	s.cache.Clear()
	return &user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, actor Role) ([]User, error) {
	if actor != RoleSuperadmin {
		return nil, fmt.Errorf("%w: only superadmins can list users", ErrForbidden)
	}
	return s.repo.List(ctx)
}

func (s *Service) ListTesters(ctx context.Context, actor Role) ([]TesterInfo, error) {
	if !actor.CanManageTestCases() {
		return nil, fmt.Errorf("%w: role %s cannot list testers", ErrForbidden, actor)
	}
	testers, generation, ok := s.cache.GetTesters()
	if ok {
		return testers, nil
	}

	testers, err := s.repo.ListTesters(ctx)
	if err != nil {
		return nil, err
	}
	// Dropped if a user was created while the list was being read.
	s.cache.SetTesters(testers, generation, s.cacheTTL)
	return testers, nil
}

func normalizeEmail(value string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(value))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrValidation)
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return "", fmt.Errorf("%w: invalid email %q", ErrValidation, value)
	}
	return email, nil
}
