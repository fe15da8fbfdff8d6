package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type ResidentRepository interface {
	Create(ctx context.Context, res *models.Resident) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Resident, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Resident, error)
	ListByApartmentID(ctx context.Context, apartmentID uuid.UUID, scope policy.Scope) ([]*models.Resident, error)
	Update(ctx context.Context, res *models.Resident) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type residentRepo struct {
	db DB
}

func NewResidentRepository(db DB) ResidentRepository {
	return &residentRepo{db: db}
}

func (r *residentRepo) Create(ctx context.Context, res *models.Resident) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO residents (id, apartment_id, full_name, contact, role, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, res.ID, res.ApartmentID, res.FullName, res.Contact, res.Role)
	return err
}

func (r *residentRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Resident, error) {
	args := []interface{}{id}
	sql := baseSelectResident() + " WHERE r.id=$1 AND " + residentScopeSQL(scope, "r", &args)
	return scanResident(r.db.QueryRow(ctx, sql, args...))
}

func (r *residentRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Resident, error) {
	args := []interface{}{}
	sql := baseSelectResident() + " WHERE " + residentScopeSQL(scope, "r", &args) + " ORDER BY r.full_name"
	return r.list(ctx, sql, args...)
}

func (r *residentRepo) ListByApartmentID(ctx context.Context, apartmentID uuid.UUID, scope policy.Scope) ([]*models.Resident, error) {
	args := []interface{}{apartmentID}
	sql := baseSelectResident() + " WHERE r.apartment_id=$1 AND " + residentScopeSQL(scope, "r", &args) + " ORDER BY r.full_name"
	return r.list(ctx, sql, args...)
}

func (r *residentRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Resident, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Resident
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *residentRepo) Update(ctx context.Context, res *models.Resident) error {
	_, err := r.db.Exec(ctx, `
        UPDATE residents SET apartment_id=$1, full_name=$2, contact=$3, role=$4 WHERE id=$5
    `, res.ApartmentID, res.FullName, res.Contact, res.Role, res.ID)
	return err
}

func (r *residentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM residents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectResident() string {
	return `SELECT r.id, r.apartment_id, r.full_name, r.contact, r.role, r.created_at FROM residents r`
}

func scanResident(row pgx.Row) (*models.Resident, error) {
	var res models.Resident
	err := row.Scan(&res.ID, &res.ApartmentID, &res.FullName, &res.Contact, &res.Role, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}
