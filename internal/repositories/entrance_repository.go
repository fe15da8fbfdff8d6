package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type EntranceRepository interface {
	Create(ctx context.Context, e *models.Entrance) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Entrance, error)
	ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Entrance, error)
	Update(ctx context.Context, e *models.Entrance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type entranceRepo struct {
	db DB
}

func NewEntranceRepository(db DB) EntranceRepository {
	return &entranceRepo{db: db}
}

func (r *entranceRepo) Create(ctx context.Context, e *models.Entrance) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO entrances (id, building_id, number, created_at)
        VALUES ($1,$2,$3, NOW())
    `, e.ID, e.BuildingID, e.Number)
	return err
}

func (r *entranceRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Entrance, error) {
	args := []interface{}{id}
	sql := baseSelectEntrance() + " WHERE e.id=$1 AND " + entranceScopeSQL(scope, "e", &args)
	return scanEntrance(r.db.QueryRow(ctx, sql, args...))
}

func (r *entranceRepo) ListByBuildingID(ctx context.Context, buildingID uuid.UUID) ([]*models.Entrance, error) {
	rows, err := r.db.Query(ctx, baseSelectEntrance()+" WHERE e.building_id=$1 ORDER BY e.number", buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Entrance
	for rows.Next() {
		e, err := scanEntrance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *entranceRepo) Update(ctx context.Context, e *models.Entrance) error {
	_, err := r.db.Exec(ctx, `UPDATE entrances SET number=$1 WHERE id=$2`, e.Number, e.ID)
	return err
}

func (r *entranceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM entrances WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectEntrance() string {
	return `SELECT e.id, e.building_id, e.number, e.created_at FROM entrances e`
}

func scanEntrance(row pgx.Row) (*models.Entrance, error) {
	var e models.Entrance
	err := row.Scan(&e.ID, &e.BuildingID, &e.Number, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}
