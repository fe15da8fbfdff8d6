package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type MaintenanceRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error

	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.MaintenanceRequest, error)

	// ListScoped orders the board: new first, then in_progress, then done,
	// newest first inside each column.
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.MaintenanceRequest, error)

	Update(ctx context.Context, m *models.MaintenanceRequest) error
	UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error

	Delete(ctx context.Context, id uuid.UUID) error
}

type maintenanceRepo struct {
	*BaseVersionedRepo[*models.MaintenanceRequest]
	db DB
}

func NewMaintenanceRepository(db DB) MaintenanceRepository {
	return &maintenanceRepo{
		BaseVersionedRepo: NewBaseRepo(
			db,
			baseSelectTicket()+" WHERE t.id=$1",
			scanTicket,
		),
		db: db,
	}
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO maintenance_requests (
            id, owner_id, apartment_id, description, status,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
    `, m.ID, m.OwnerID, m.ApartmentID, m.Description, m.Status)
	return err
}

func (r *maintenanceRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.MaintenanceRequest, error) {
	args := []interface{}{id}
	sql := baseSelectTicket() + " WHERE t.id=$1 AND " + ticketScopeSQL(scope, "t", &args)
	return scanTicket(r.db.QueryRow(ctx, sql, args...))
}

func (r *maintenanceRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.MaintenanceRequest, error) {
	args := []interface{}{}
	sql := baseSelectTicket() + " WHERE " + ticketScopeSQL(scope, "t", &args) + `
        ORDER BY CASE t.status
            WHEN 'new' THEN 0
            WHEN 'in_progress' THEN 1
            ELSE 2
        END, t.created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.MaintenanceRequest
	for rows.Next() {
		m, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *maintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	_, err := r.update(ctx, m, false, 0)
	return err
}

func (r *maintenanceRepo) UpdateIfVersion(ctx context.Context, m *models.MaintenanceRequest, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, m, true, expected)
}

func (r *maintenanceRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *maintenanceRepo) update(ctx context.Context, m *models.MaintenanceRequest, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE maintenance_requests SET
            description=$1, status=$2, updated_at=NOW(), row_version=row_version+1
    `
	args := []interface{}{m.Description, m.Status, m.ID}
	sql += ` WHERE id=$3`
	if check {
		args = append(args, expected)
		sql += ` AND row_version=$4`
	}
	return r.db.Exec(ctx, sql, args...)
}

func (r *maintenanceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectTicket() string {
	return `SELECT t.id, t.owner_id, t.apartment_id, t.description, t.status,
        t.created_at, t.updated_at, t.row_version FROM maintenance_requests t`
}

func scanTicket(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := row.Scan(
		&m.ID, &m.OwnerID, &m.ApartmentID, &m.Description, &m.Status,
		&m.CreatedAt, &m.UpdatedAt, &m.RowVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
