package leave

import (
	"context"
	"errors"
	"strings"
	"time"

	"ulms/internal/domain/auth"
)

var (
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidState   = errors.New("invalid state")
	ErrReasonRequired = errors.New("rejection reason required")
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

func (s *Service) Types(ctx context.Context) ([]LeaveType, error) {
	return s.Store.ListTypes(ctx)
}

func (s *Service) Submit(ctx context.Context, employeeID string, in SubmitInput) (Record, error) {
	if strings.TrimSpace(in.LeaveType) == "" {
		return Record{}, errors.New("leave type is required")
	}
	days, err := DaysFor(in)
	if err != nil {
		return Record{}, err
	}

	id, err := s.Store.Create(ctx, employeeID, in, days)
	if err != nil {
		return Record{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s *Service) MyRequests(ctx context.Context, employeeID string) ([]Record, error) {
	return s.Store.ListByEmployee(ctx, employeeID)
}

// PendingForReviewer scopes the review queue: department admins see their own
// department, the assistant registrar sees everything.
func (s *Service) PendingForReviewer(ctx context.Context, reviewer auth.UserContext) ([]Record, error) {
	switch reviewer.Role {
	case auth.RoleDeptAdmin:
		return s.Store.ListPending(ctx, reviewer.Department)
	case auth.RoleAsstRegistrar:
		return s.Store.ListPending(ctx, "")
	default:
		return nil, ErrForbidden
	}
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.Store.GetByID(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id string, reviewer auth.UserContext) (Record, error) {
	if err := s.authorizeDecision(ctx, id, reviewer); err != nil {
		return Record{}, err
	}
	if err := s.Store.UpdateStatus(ctx, id, StatusApproved, "", reviewer.UserID); err != nil {
		return Record{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s *Service) Reject(ctx context.Context, id, reason string, reviewer auth.UserContext) (Record, error) {
	if strings.TrimSpace(reason) == "" {
		return Record{}, ErrReasonRequired
	}
	if err := s.authorizeDecision(ctx, id, reviewer); err != nil {
		return Record{}, err
	}
	if err := s.Store.UpdateStatus(ctx, id, StatusRejected, reason, reviewer.UserID); err != nil {
		return Record{}, err
	}
	return s.Store.GetByID(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id, employeeID string) error {
	return s.Store.DeletePending(ctx, id, employeeID)
}

func (s *Service) authorizeDecision(ctx context.Context, id string, reviewer auth.UserContext) error {
	record, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.Status != StatusPending {
		return ErrInvalidState
	}

	switch reviewer.Role {
	case auth.RoleAsstRegistrar:
		return nil
	case auth.RoleDeptAdmin:
		if record.Employee != nil && record.Employee.Department == reviewer.Department {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}

func (s *Service) ApprovedInRange(ctx context.Context, start, end time.Time) ([]Record, error) {
	return s.Store.ApprovedInRange(ctx, start, end)
}

func (s *Service) ApprovedForEmployee(ctx context.Context, employeeID string, year int) ([]Record, error) {
	return s.Store.ApprovedForEmployee(ctx, employeeID, year)
}

func (s *Service) ApprovedInMonth(ctx context.Context, month time.Month, year int) ([]Record, error) {
	return s.Store.ApprovedInMonth(ctx, month, year)
}
