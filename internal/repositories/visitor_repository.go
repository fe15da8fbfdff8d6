package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type VisitorRepository interface {
	Create(ctx context.Context, v *models.Visitor) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Visitor, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Visitor, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// PurgeOlderThan drops logbook entries created before the cutoff;
	// returns the number of rows removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type visitorRepo struct {
	db DB
}

func NewVisitorRepository(db DB) VisitorRepository {
	return &visitorRepo{db: db}
}

func (r *visitorRepo) Create(ctx context.Context, v *models.Visitor) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO visitors (id, apartment_id, added_by_id, full_name, purpose, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, v.ID, v.ApartmentID, v.AddedByID, v.FullName, v.Purpose)
	return err
}

func (r *visitorRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Visitor, error) {
	args := []interface{}{id}
	sql := baseSelectVisitor() + " WHERE v.id=$1 AND " + visitorScopeSQL(scope, "v", &args)
	return scanVisitor(r.db.QueryRow(ctx, sql, args...))
}

func (r *visitorRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Visitor, error) {
	args := []interface{}{}
	sql := baseSelectVisitor() + " WHERE " + visitorScopeSQL(scope, "v", &args) + " ORDER BY v.created_at DESC"
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Visitor
	for rows.Next() {
		v, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *visitorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM visitors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *visitorRepo) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM visitors WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectVisitor() string {
	return `SELECT v.id, v.apartment_id, v.added_by_id, v.full_name, v.purpose, v.created_at FROM visitors v`
}

func scanVisitor(row pgx.Row) (*models.Visitor, error) {
	var v models.Visitor
	err := row.Scan(&v.ID, &v.ApartmentID, &v.AddedByID, &v.FullName, &v.Purpose, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}
