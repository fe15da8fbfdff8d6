package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type BuildingRepository interface {
	Create(ctx context.Context, b *models.Building) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Building, error)
	ListByComplexID(ctx context.Context, complexID uuid.UUID) ([]*models.Building, error)
	Update(ctx context.Context, b *models.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type buildingRepo struct {
	db DB
}

func NewBuildingRepository(db DB) BuildingRepository {
	return &buildingRepo{db: db}
}

func (r *buildingRepo) Create(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO buildings (id, complex_id, number, floors, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, b.ID, b.ComplexID, b.Number, b.Floors)
	return err
}

func (r *buildingRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Building, error) {
	args := []interface{}{id}
	sql := baseSelectBuilding() + " WHERE b.id=$1 AND " + buildingScopeSQL(scope, "b", &args)
	return scanBuilding(r.db.QueryRow(ctx, sql, args...))
}

func (r *buildingRepo) ListByComplexID(ctx context.Context, complexID uuid.UUID) ([]*models.Building, error) {
	rows, err := r.db.Query(ctx, baseSelectBuilding()+" WHERE b.complex_id=$1 ORDER BY b.number", complexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Building
	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *buildingRepo) Update(ctx context.Context, b *models.Building) error {
	_, err := r.db.Exec(ctx, `
        UPDATE buildings SET number=$1, floors=$2 WHERE id=$3
    `, b.Number, b.Floors, b.ID)
	return err
}

func (r *buildingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM buildings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectBuilding() string {
	return `SELECT b.id, b.complex_id, b.number, b.floors, b.created_at FROM buildings b`
}

func scanBuilding(row pgx.Row) (*models.Building, error) {
	var b models.Building
	err := row.Scan(&b.ID, &b.ComplexID, &b.Number, &b.Floors, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
