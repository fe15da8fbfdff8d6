package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type ComplexRepository interface {
	Create(ctx context.Context, c *models.ResidentialComplex) error

	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ResidentialComplex, error)
	ListScoped(ctx context.Context, scope policy.Scope, query string) ([]*models.ResidentialComplex, error)

	Update(ctx context.Context, c *models.ResidentialComplex) error
	UpdateIfVersion(ctx context.Context, c *models.ResidentialComplex, expected int64) (pgconn.CommandTag, error)
	UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.ResidentialComplex) error) error

	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type complexRepo struct {
	*BaseVersionedRepo[*models.ResidentialComplex]
	db DB
}

func NewComplexRepository(db DB) ComplexRepository {
	r := &complexRepo{db: db}
	selectStmt := baseSelectComplex() + " WHERE c.id=$1"
	r.BaseVersionedRepo = NewBaseRepo(db, selectStmt, scanComplex)
	return r
}

func (r *complexRepo) Create(ctx context.Context, c *models.ResidentialComplex) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO residential_complexes (
            id, name, address, management, contact,
            created_at, updated_at, row_version
        ) VALUES ($1,$2,$3,$4,$5, NOW(), NOW(), 1)
    `,
		c.ID,
		c.Name,
		c.Address,
		c.Management,
		c.Contact,
	)
	return err
}

func (r *complexRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.ResidentialComplex, error) {
	args := []interface{}{id}
	sql := baseSelectComplex() + " WHERE c.id=$1 AND " + complexScopeSQL(scope, "c", &args)
	return scanComplex(r.db.QueryRow(ctx, sql, args...))
}

func (r *complexRepo) ListScoped(ctx context.Context, scope policy.Scope, query string) ([]*models.ResidentialComplex, error) {
	args := []interface{}{}
	sql := baseSelectComplex() + " WHERE " + complexScopeSQL(scope, "c", &args)
	if query != "" {
		args = append(args, "%"+query+"%")
		n := len(args)
		sql += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.address ILIKE $%d)", n, n)
	}
	sql += " ORDER BY c.name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ResidentialComplex
	for rows.Next() {
		c, err := scanComplex(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *complexRepo) Update(ctx context.Context, c *models.ResidentialComplex) error {
	_, err := r.update(ctx, c, false, 0)
	return err
}

func (r *complexRepo) UpdateIfVersion(ctx context.Context, c *models.ResidentialComplex, expected int64) (pgconn.CommandTag, error) {
	return r.update(ctx, c, true, expected)
}

func (r *complexRepo) UpdateWithRetry(ctx context.Context, id uuid.UUID, mutate func(*models.ResidentialComplex) error) error {
	return r.BaseVersionedRepo.UpdateWithRetry(ctx, id.String(), mutate, r.UpdateIfVersion)
}

func (r *complexRepo) update(ctx context.Context, c *models.ResidentialComplex, check bool, expected int64) (pgconn.CommandTag, error) {
	sql := `
        UPDATE residential_complexes SET
            name=$1, address=$2, management=$3, contact=$4, updated_at=NOW()
    `
	args := []interface{}{c.Name, c.Address, c.Management, c.Contact}
	if check {
		sql += `, row_version=row_version+1 WHERE id=$5 AND row_version=$6`
		args = append(args, c.ID, expected)
	} else {
		sql += ` WHERE id=$5`
		args = append(args, c.ID)
	}

	return r.db.Exec(ctx, sql, args...)
}

// Delete cascades through buildings, entrances and apartments at the
// database level.
func (r *complexRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM residential_complexes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func baseSelectComplex() string {
	return `
        SELECT
            c.id, c.name, c.address, c.management, c.contact,
            c.created_at, c.updated_at, c.row_version
        FROM residential_complexes c
    `
}

func scanComplex(row pgx.Row) (*models.ResidentialComplex, error) {
	var c models.ResidentialComplex
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Address,
		&c.Management,
		&c.Contact,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.RowVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
