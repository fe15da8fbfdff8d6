package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type StaffRepository interface {
	Create(ctx context.Context, s *models.Staff) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Staff, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Staff, error)
	ListUnaccounted(ctx context.Context, scope policy.Scope) ([]*models.Staff, error)
	Update(ctx context.Context, s *models.Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type staffRepo struct {
	db DB
}

func NewStaffRepository(db DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, s *models.Staff) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO staff (id, complex_id, full_name, contact, role, work_schedule, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, NOW())
    `, s.ID, s.ComplexID, s.FullName, s.Contact, s.Role, s.WorkSchedule)
	return err
}

func (r *staffRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Staff, error) {
	args := []interface{}{id}
	sql := baseSelectStaff() + " WHERE s.id=$1 AND " + staffScopeSQL(scope, "s", &args)
	return scanStaff(r.db.QueryRow(ctx, sql, args...))
}

func (r *staffRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Staff, error) {
	args := []interface{}{}
	sql := baseSelectStaff() + " WHERE " + staffScopeSQL(scope, "s", &args) + " ORDER BY s.full_name"
	return r.list(ctx, sql, args...)
}

// ListUnaccounted returns in-scope staff without a login account yet;
// they are the candidates when creating a staff account.
func (r *staffRepo) ListUnaccounted(ctx context.Context, scope policy.Scope) ([]*models.Staff, error) {
	args := []interface{}{}
	sql := baseSelectStaff() +
		" WHERE NOT EXISTS (SELECT 1 FROM staff_accounts sa WHERE sa.staff_id = s.id)" +
		" AND " + staffScopeSQL(scope, "s", &args) +
		" ORDER BY s.full_name"
	return r.list(ctx, sql, args...)
}

func (r *staffRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Staff, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *staffRepo) Update(ctx context.Context, s *models.Staff) error {
	_, err := r.db.Exec(ctx, `
        UPDATE staff SET full_name=$1, contact=$2, role=$3, work_schedule=$4 WHERE id=$5
    `, s.FullName, s.Contact, s.Role, s.WorkSchedule, s.ID)
	return err
}

func (r *staffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectStaff() string {
	return `SELECT s.id, s.complex_id, s.full_name, s.contact, s.role, s.work_schedule, s.created_at FROM staff s`
}

func scanStaff(row pgx.Row) (*models.Staff, error) {
	var s models.Staff
	err := row.Scan(&s.ID, &s.ComplexID, &s.FullName, &s.Contact, &s.Role, &s.WorkSchedule, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
