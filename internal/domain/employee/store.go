package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ulms/internal/platform/querier"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, employee_no, first_name, last_name, email,
  COALESCE(phone, ''), COALESCE(faculty, ''), COALESCE(department, ''),
  staff_category, type_of_registration, job_title, role, active,
  created_at, updated_at
`

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.EmployeeNo, &e.FirstName, &e.LastName, &e.Email,
		&e.Phone, &e.Faculty, &e.Department,
		&e.StaffCategory, &e.TypeOfRegistration, &e.JobTitle, &e.Role, &e.Active,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (s *Store) HasPermission(ctx context.Context, role, permission string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM role_permissions rp
    JOIN permissions p ON rp.permission_id = p.id
    WHERE rp.role = $1 AND p.key = $2
  `, role, permission).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (Employee, string, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`, password_hash
    FROM employees
    WHERE lower(email) = lower($1)
  `, email)

	var e Employee
	var hash string
	err := row.Scan(
		&e.ID, &e.EmployeeNo, &e.FirstName, &e.LastName, &e.Email,
		&e.Phone, &e.Faculty, &e.Department,
		&e.StaffCategory, &e.TypeOfRegistration, &e.JobTitle, &e.Role, &e.Active,
		&e.CreatedAt, &e.UpdatedAt, &hash,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, "", ErrNotFound
	}
	if err != nil {
		return Employee{}, "", err
	}
	return e, hash, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Employee, error) {
	e, err := scanEmployee(s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return e, err
}

func (s *Store) ListActive(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE active
    ORDER BY employee_no
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListByDepartment(ctx context.Context, department string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE active AND department = $1
    ORDER BY employee_no
  `, department)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, e Employee, passwordHash string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees
      (employee_no, first_name, last_name, email, password_hash, phone,
       faculty, department, staff_category, type_of_registration, job_title, role, active)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,true)
    RETURNING id
  `, e.EmployeeNo, e.FirstName, e.LastName, e.Email, passwordHash, e.Phone,
		e.Faculty, e.Department, e.StaffCategory, e.TypeOfRegistration, e.JobTitle, e.Role).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, e Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET first_name = $2, last_name = $3, phone = $4, faculty = $5, department = $6,
        staff_category = $7, type_of_registration = $8, job_title = $9, role = $10,
        updated_at = now()
    WHERE id = $1
  `, e.ID, e.FirstName, e.LastName, e.Phone, e.Faculty, e.Department,
		e.StaffCategory, e.TypeOfRegistration, e.JobTitle, e.Role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET active = $2, updated_at = now() WHERE id = $1
  `, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
