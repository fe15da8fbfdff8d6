package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type StorageRepository interface {
	Create(ctx context.Context, s *models.StorageRoom) error
	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.StorageRoom, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.StorageRoom, error)
	Update(ctx context.Context, s *models.StorageRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type storageRepo struct {
	db DB
}

func NewStorageRepository(db DB) StorageRepository {
	return &storageRepo{db: db}
}

func (r *storageRepo) Create(ctx context.Context, s *models.StorageRoom) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO storage_rooms (id, apartment_id, number, location, status, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, s.ID, s.ApartmentID, s.Number, s.Location, s.Status)
	return err
}

func (r *storageRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.StorageRoom, error) {
	args := []interface{}{id}
	sql := baseSelectStorageRoom() + " WHERE st.id=$1 AND " + storageScopeSQL(scope, "st", &args)
	return scanStorageRoom(r.db.QueryRow(ctx, sql, args...))
}

func (r *storageRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.StorageRoom, error) {
	args := []interface{}{}
	sql := baseSelectStorageRoom() + " WHERE " + storageScopeSQL(scope, "st", &args) + " ORDER BY st.number"
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StorageRoom
	for rows.Next() {
		s, err := scanStorageRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *storageRepo) Update(ctx context.Context, s *models.StorageRoom) error {
	_, err := r.db.Exec(ctx, `
        UPDATE storage_rooms SET apartment_id=$1, number=$2, location=$3, status=$4 WHERE id=$5
    `, s.ApartmentID, s.Number, s.Location, s.Status, s.ID)
	return err
}

func (r *storageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM storage_rooms WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectStorageRoom() string {
	return `SELECT st.id, st.apartment_id, st.number, st.location, st.status, st.created_at FROM storage_rooms st`
}

func scanStorageRoom(row pgx.Row) (*models.StorageRoom, error) {
	var s models.StorageRoom
	err := row.Scan(&s.ID, &s.ApartmentID, &s.Number, &s.Location, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
