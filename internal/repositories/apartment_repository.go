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

type ApartmentRepository interface {
	Create(ctx context.Context, a *models.Apartment) error

	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Apartment, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Apartment, error)
	ListByEntranceID(ctx context.Context, entranceID uuid.UUID) ([]*models.Apartment, error)
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Apartment, error)

	Update(ctx context.Context, a *models.Apartment) error
	UpdateIfVersion(ctx context.Context, a *models.Apartment, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Apartment) error) error

	Delete(ctx context.Context, id uuid.UUID) error
}

type apartmentRepo struct {
	*BaseVersionedRepo[*models.Apartment]
	db DB
}

func NewApartmentRepository(db DB) ApartmentRepository {
	r := &apartmentRepo{db: db}
	selectStmt := baseSelectApartment() + " WHERE a.id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanApartment)
	return r
}

func (r *apartmentRepo) Create(ctx context.Context, a *models.Apartment) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO apartments (
            id, entrance_id, owner_id, number, floor, rooms, area_m2,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5,$6,$7, NOW(), NOW(), 1)
    `,
		a.ID,
		a.EntranceID,
		a.OwnerID,
		a.Number,
		a.Floor,
		a.Rooms,
		a.AreaM2,
	)
	return err
}

func (r *apartmentRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Apartment, error) {
	args := []interface{}{id}
	sql := baseSelectApartment() + " WHERE a.id=$1 AND " + apartmentScopeSQL(scope, "a", &args)
	return scanApartment(r.db.QueryRow(ctx, sql, args...))
}

func (r *apartmentRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Apartment, error) {
	args := []interface{}{}
	sql := baseSelectApartment() + " WHERE " + apartmentScopeSQL(scope, "a", &args) +
		" ORDER BY a.floor, a.number"
	return r.list(ctx, sql, args...)
}

func (r *apartmentRepo) ListByEntranceID(ctx context.Context, entranceID uuid.UUID) ([]*models.Apartment, error) {
	return r.list(ctx, baseSelectApartment()+" WHERE a.entrance_id=$1 ORDER BY a.floor, a.number", entranceID)
}

func (r *apartmentRepo) ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*models.Apartment, error) {
	return r.list(ctx, baseSelectApartment()+" WHERE a.owner_id=$1 ORDER BY a.number", ownerID)
}

func (r *apartmentRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Apartment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Apartment
	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *apartmentRepo) Update(ctx context.Context, a *models.Apartment) error {
	_, err := r.update(ctx, a, false, 0)
	return err
}

func (r *apartmentRepo) UpdateIfVersion(ctx context.Context, a *models.Apartment, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, a, true, expected)
}

func (r *apartmentRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.Apartment) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *apartmentRepo) update(ctx context.Context, a *models.Apartment, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE apartments SET
            owner_id=$1, number=$2, floor=$3, rooms=$4, area_m2=$5, updated_at=NOW()
    `
	args := []interface{}{a.OwnerID, a.Number, a.Floor, a.Rooms, a.AreaM2}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$6 AND row_version=$7`
		args = append(args, a.ID, expected)
	} else {
		sql += ` WHERE id=$6`
		args = append(args, a.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

func (r *apartmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM apartments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectApartment() string {
	return `
        SELECT
            a.id, a.entrance_id, a.owner_id, a.number, a.floor, a.rooms, a.area_m2,
            a.created_at, a.updated_at, a.row_version
        FROM apartments a
    `
}

func scanApartment(row pgx.Row) (*models.Apartment, error) {
	var a models.Apartment
	err := row.Scan(
		&a.ID,
		&a.EntranceID,
		&a.OwnerID,
		&a.Number,
		&a.Floor,
		&a.Rooms,
		&a.AreaM2,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.RowVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
