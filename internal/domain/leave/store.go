package leave

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"ulms/internal/domain/employee"
	"ulms/internal/platform/querier"
)

var ErrNotFound = errors.New("leave request not found")

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const recordSelect = `
  SELECT r.id, r.leave_type, r.status,
         r.from_date, r.to_date,
         r.short_leave_date, COALESCE(r.short_leave_start, ''), COALESCE(r.short_leave_end, ''),
         r.number_of_days,
         COALESCE(r.purpose, ''), COALESCE(r.rejection_reason, ''),
         COALESCE(r.acting_officer, ''), COALESCE(r.contact_during_leave, ''),
         COALESCE(r.decided_by::text, ''), r.decided_at, r.created_at,
         e.id, e.employee_no, e.first_name, e.last_name, e.email,
         COALESCE(e.faculty, ''), COALESCE(e.department, ''),
         e.staff_category, e.type_of_registration, e.job_title, e.role
  FROM leave_requests r
  LEFT JOIN employees e ON e.id = r.employee_id
`

func scanRecord(row pgx.Row) (Record, error) {
	var r Record
	var empID, empNo, firstName, lastName, email *string
	var faculty, department, category, registration, jobTitle, role *string

	err := row.Scan(
		&r.ID, &r.LeaveType, &r.Status,
		&r.FromDate, &r.ToDate,
		&r.ShortLeaveDate, &r.ShortLeaveStart, &r.ShortLeaveEnd,
		&r.NumberOfDays,
		&r.Purpose, &r.RejectionReason,
		&r.ActingOfficer, &r.ContactDuringLeave,
		&r.DecidedBy, &r.DecidedAt, &r.CreatedAt,
		&empID, &empNo, &firstName, &lastName, &email,
		&faculty, &department, &category, &registration, &jobTitle, &role,
	)
	if err != nil {
		return Record{}, err
	}

	if empID != nil {
		r.Employee = &employee.Employee{
			ID:                 *empID,
			EmployeeNo:         deref(empNo),
			FirstName:          deref(firstName),
			LastName:           deref(lastName),
			Email:              deref(email),
			Faculty:            deref(faculty),
			Department:         deref(department),
			StaffCategory:      deref(category),
			TypeOfRegistration: deref(registration),
			JobTitle:           deref(jobTitle),
			Role:               deref(role),
		}
	}
	return r, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *Store) collect(rows pgx.Rows) ([]Record, error) {
	defer rows.Close()
	var out []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, employeeID string, in SubmitInput, days float64) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests
      (employee_id, leave_type, status, from_date, to_date,
       short_leave_date, short_leave_start, short_leave_end,
       number_of_days, purpose, acting_officer, contact_during_leave)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id
  `, employeeID, in.LeaveType, StatusPending, in.FromDate, in.ToDate,
		in.ShortLeaveDate, nullIfEmpty(in.ShortLeaveStart), nullIfEmpty(in.ShortLeaveEnd),
		days, in.Purpose, in.ActingOfficer, in.ContactDuringLeave).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (s *Store) GetByID(ctx context.Context, id string) (Record, error) {
	r, err := scanRecord(s.DB.QueryRow(ctx, recordSelect+" WHERE r.id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return r, err
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	rows, err := s.DB.Query(ctx, recordSelect+`
    WHERE r.employee_id = $1
    ORDER BY r.created_at DESC
  `, employeeID)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

// ListPending returns pending requests, optionally restricted to one
// department for department-admin review queues.
func (s *Store) ListPending(ctx context.Context, department string) ([]Record, error) {
	query := recordSelect + " WHERE r.status = $1"
	args := []any{StatusPending}
	if department != "" {
		query += " AND e.department = $2"
		args = append(args, department)
	}
	query += " ORDER BY r.created_at"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *Store) UpdateStatus(ctx context.Context, id, status, reason, deciderID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE leave_requests
    SET status = $2, rejection_reason = $3, decided_by = $4, decided_at = now()
    WHERE id = $1
  `, id, status, nullIfEmpty(reason), deciderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeletePending(ctx context.Context, id, employeeID string) error {
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM leave_requests
    WHERE id = $1 AND employee_id = $2 AND status = $3
  `, id, employeeID, StatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ApprovedInRange returns approved records whose leave dates overlap the
// inclusive [start, end] window.
func (s *Store) ApprovedInRange(ctx context.Context, start, end time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, recordSelect+`
    WHERE r.status = $1
      AND ((r.from_date IS NOT NULL AND r.from_date <= $3 AND r.to_date >= $2)
        OR (r.short_leave_date IS NOT NULL AND r.short_leave_date BETWEEN $2 AND $3))
    ORDER BY r.created_at
  `, StatusApproved, start, end)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *Store) ApprovedForEmployee(ctx context.Context, employeeID string, year int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, recordSelect+`
    WHERE r.status = $1 AND r.employee_id = $2
      AND (EXTRACT(YEAR FROM r.from_date) = $3 OR EXTRACT(YEAR FROM r.short_leave_date) = $3)
    ORDER BY r.created_at
  `, StatusApproved, employeeID, year)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *Store) ApprovedInMonth(ctx context.Context, month time.Month, year int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, recordSelect+`
    WHERE r.status = $1
      AND ((EXTRACT(YEAR FROM r.from_date) = $3 AND EXTRACT(MONTH FROM r.from_date) = $2)
        OR (EXTRACT(YEAR FROM r.short_leave_date) = $3 AND EXTRACT(MONTH FROM r.short_leave_date) = $2))
    ORDER BY r.created_at
  `, StatusApproved, int(month), year)
	if err != nil {
		return nil, err
	}
	return s.collect(rows)
}

func (s *Store) ListTypes(ctx context.Context) ([]LeaveType, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, code, intra_day, created_at
    FROM leave_types
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []LeaveType
	for rows.Next() {
		var t LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.Code, &t.IntraDay, &t.CreatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
