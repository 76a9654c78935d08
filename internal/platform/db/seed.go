package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"ulms/internal/domain/auth"
	"ulms/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensurePermissions(ctx, pool); err != nil {
		return err
	}
	if err := ensureRolePermissions(ctx, pool); err != nil {
		return err
	}
	if err := ensureLeaveTypes(ctx, pool); err != nil {
		return err
	}
	if cfg.SeedAdminEmail != "" {
		if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return err
		}
	}
	return nil
}

func ensurePermissions(ctx context.Context, pool *pgxpool.Pool) error {
	for _, perm := range auth.DefaultPermissions {
		_, err := pool.Exec(ctx, "INSERT INTO permissions (key) VALUES ($1) ON CONFLICT (key) DO NOTHING", perm)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureRolePermissions(ctx context.Context, pool *pgxpool.Pool) error {
	permIDs := map[string]string{}
	rows, err := pool.Query(ctx, "SELECT id, key FROM permissions")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, key string
		if err := rows.Scan(&id, &key); err != nil {
			return err
		}
		permIDs[key] = id
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for role, perms := range auth.RolePermissions {
		for _, perm := range perms {
			id, ok := permIDs[perm]
			if !ok {
				continue
			}
			_, err := pool.Exec(ctx, `
        INSERT INTO role_permissions (role, permission_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING
      `, role, id)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

var defaultLeaveTypes = []struct {
	name     string
	code     string
	intraDay bool
}{
	{"Casual Leave", "CASUAL", false},
	{"Sick Leave", "SICK", false},
	{"Half Day", "HALF_DAY", true},
	{"Short Leave", "SHORT", true},
	{"Duty Leave", "DUTY", false},
	{"Vacation Leave", "VACATION", false},
}

func ensureLeaveTypes(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range defaultLeaveTypes {
		_, err := pool.Exec(ctx, `
      INSERT INTO leave_types (name, code, intra_day)
      VALUES ($1, $2, $3)
      ON CONFLICT (code) DO NOTHING
    `, t.name, t.code, t.intraDay)
		if err != nil {
			return err
		}
	}
	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE lower(email) = lower($1)", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	name := strings.SplitN(email, "@", 2)[0]
	_, err = pool.Exec(ctx, `
    INSERT INTO employees (employee_no, first_name, last_name, email, password_hash, job_title, role, staff_category, type_of_registration)
    VALUES ('SYS-0001', $1, 'Administrator', $2, $3, 'System Administrator', $4, 'NON_ACADEMIC', 'PERMANENT')
  `, name, email, hash, auth.RoleSystemAdmin)
	return err
}
