package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type ParkingRepository interface {
	CreateZone(ctx context.Context, z *models.ParkingZone) error
	GetZoneScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ParkingZone, error)
	ListZonesScoped(ctx context.Context, scope policy.Scope) ([]*models.ParkingZone, error)
	UpdateZone(ctx context.Context, z *models.ParkingZone) error
	DeleteZone(ctx context.Context, id uuid.UUID) error

	CreateSpot(ctx context.Context, s *models.ParkingSpot) error
	GetSpotScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ParkingSpot, error)
	ListSpotsScoped(ctx context.Context, scope policy.Scope) ([]*models.ParkingSpot, error)
	ListSpotsByZoneID(ctx context.Context, zoneID uuid.UUID, scope policy.Scope) ([]*models.ParkingSpot, error)
	UpdateSpot(ctx context.Context, s *models.ParkingSpot) error
	DeleteSpot(ctx context.Context, id uuid.UUID) error
}

type parkingRepo struct {
	db DB
}

func NewParkingRepository(db DB) ParkingRepository {
	return &parkingRepo{db: db}
}

func (r *parkingRepo) CreateZone(ctx context.Context, z *models.ParkingZone) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO parking_zones (id, entrance_id, type, location, created_at)
        VALUES ($1,$2,$3,$4, NOW())
    `, z.ID, z.EntranceID, z.Type, z.Location)
	return err
}

func (r *parkingRepo) GetZoneScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ParkingZone, error) {
	args := []interface{}{id}
	sql := baseSelectParkingZone() + " WHERE z.id=$1 AND " + parkingZoneScopeSQL(scope, "z", &args)
	return scanParkingZone(r.db.QueryRow(ctx, sql, args...))
}

func (r *parkingRepo) ListZonesScoped(ctx context.Context, scope policy.Scope) ([]*models.ParkingZone, error) {
	args := []interface{}{}
	sql := baseSelectParkingZone() + " WHERE " + parkingZoneScopeSQL(scope, "z", &args) + " ORDER BY z.created_at"
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ParkingZone
	for rows.Next() {
		z, err := scanParkingZone(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

func (r *parkingRepo) UpdateZone(ctx context.Context, z *models.ParkingZone) error {
	_, err := r.db.Exec(ctx, `UPDATE parking_zones SET type=$1, location=$2 WHERE id=$3`, z.Type, z.Location, z.ID)
	return err
}

func (r *parkingRepo) DeleteZone(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parking_zones WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *parkingRepo) CreateSpot(ctx context.Context, s *models.ParkingSpot) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO parking_spots (id, parking_zone_id, owner_id, number, status, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, s.ID, s.ZoneID, s.OwnerID, s.Number, s.Status)
	return err
}

func (r *parkingRepo) GetSpotScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ParkingSpot, error) {
	args := []interface{}{id}
	sql := baseSelectParkingSpot() + " WHERE p.id=$1 AND " + parkingSpotScopeSQL(scope, "p", &args)
	return scanParkingSpot(r.db.QueryRow(ctx, sql, args...))
}

func (r *parkingRepo) ListSpotsScoped(ctx context.Context, scope policy.Scope) ([]*models.ParkingSpot, error) {
	args := []interface{}{}
	sql := baseSelectParkingSpot() + " WHERE " + parkingSpotScopeSQL(scope, "p", &args) + " ORDER BY p.number"
	return r.listSpots(ctx, sql, args...)
}

func (r *parkingRepo) ListSpotsByZoneID(ctx context.Context, zoneID uuid.UUID, scope policy.Scope) ([]*models.ParkingSpot, error) {
	args := []interface{}{zoneID}
	sql := baseSelectParkingSpot() + " WHERE p.parking_zone_id=$1 AND " + parkingSpotScopeSQL(scope, "p", &args) + " ORDER BY p.number"
	return r.listSpots(ctx, sql, args...)
}

func (r *parkingRepo) listSpots(ctx context.Context, sql string, args ...interface{}) ([]*models.ParkingSpot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ParkingSpot
	for rows.Next() {
		s, err := scanParkingSpot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *parkingRepo) UpdateSpot(ctx context.Context, s *models.ParkingSpot) error {
	_, err := r.db.Exec(ctx, `
        UPDATE parking_spots SET owner_id=$1, number=$2, status=$3 WHERE id=$4
    `, s.OwnerID, s.Number, s.Status, s.ID)
	return err
}

func (r *parkingRepo) DeleteSpot(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parking_spots WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectParkingZone() string {
	return `SELECT z.id, z.entrance_id, z.type, z.location, z.created_at FROM parking_zones z`
}

func scanParkingZone(row pgx.Row) (*models.ParkingZone, error) {
	var z models.ParkingZone
	err := row.Scan(&z.ID, &z.EntranceID, &z.Type, &z.Location, &z.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &z, nil
}

func baseSelectParkingSpot() string {
	return `SELECT p.id, p.parking_zone_id, p.owner_id, p.number, p.status, p.created_at FROM parking_spots p`
}

func scanParkingSpot(row pgx.Row) (*models.ParkingSpot, error) {
	var s models.ParkingSpot
	err := row.Scan(&s.ID, &s.ZoneID, &s.OwnerID, &s.Number, &s.Status, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
