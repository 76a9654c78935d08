package employee

import (
	"context"
	"errors"
	"strings"

	"ulms/internal/domain/auth"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrMissingField = errors.New("missing required field")
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Roster(ctx context.Context) ([]Employee, error) {
	return s.Store.ListActive(ctx)
}

func (s *Service) RosterForDepartment(ctx context.Context, department string) ([]Employee, error) {
	return s.Store.ListByDepartment(ctx, department)
}

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.Store.GetByID(ctx, id)
}

// Register creates an account. The job title is derived from the faculty and
// staff category unless one was provided explicitly.
func (s *Service) Register(ctx context.Context, e Employee, password string) (string, error) {
	if strings.TrimSpace(e.Email) == "" || strings.TrimSpace(e.EmployeeNo) == "" {
		return "", ErrMissingField
	}
	if strings.TrimSpace(password) == "" {
		return "", ErrMissingField
	}
	if !auth.ValidRole(e.Role) {
		return "", ErrInvalidRole
	}
	if strings.TrimSpace(e.JobTitle) == "" {
		e.JobTitle = DeriveJobTitle(e.Faculty, e.StaffCategory, e.TypeOfRegistration)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}
	return s.Store.Create(ctx, e, hash)
}

func (s *Service) Update(ctx context.Context, e Employee) error {
	if !auth.ValidRole(e.Role) {
		return ErrInvalidRole
	}
	if strings.TrimSpace(e.JobTitle) == "" {
		e.JobTitle = DeriveJobTitle(e.Faculty, e.StaffCategory, e.TypeOfRegistration)
	}
	return s.Store.Update(ctx, e)
}

func (s *Service) Deactivate(ctx context.Context, id string) error {
	return s.Store.SetActive(ctx, id, false)
}

func (s *Service) Reactivate(ctx context.Context, id string) error {
	return s.Store.SetActive(ctx, id, true)
}
