package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/utils"
)

// foreignKeyViolation is the Postgres error code raised when a RESTRICT
// reference still points at the row being deleted.
const foreignKeyViolation = "23503"

type OwnerRepository interface {
	Create(ctx context.Context, o *models.Owner) error

	GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Owner, error)
	ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Owner, error)
	ListUnaccounted(ctx context.Context, scope policy.Scope) ([]*models.Owner, error)

	Update(ctx context.Context, o *models.Owner) error

	// Delete removes the owner together with its login account and the
	// account's orphaned user, all in one transaction. It fails with
	// utils.ErrReferentialConflict while apartments or parking spots
	// still reference the owner, in which case nothing is deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteWithUnlink nulls the owner's apartment links first, then
	// deletes like Delete. Parking spots are never auto-unlinked; they
	// still block, and a blocked delete rolls the unlink back too.
	DeleteWithUnlink(ctx context.Context, id uuid.UUID) error
}

type ownerRepo struct {
	db DB
}

func NewOwnerRepository(db DB) OwnerRepository {
	return &ownerRepo{db: db}
}

func (r *ownerRepo) Create(ctx context.Context, o *models.Owner) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO owners (id, name, phone, created_at)
        VALUES ($1,$2,$3, NOW())
    `, o.ID, o.Name, o.Phone)
	return err
}

func (r *ownerRepo) GetScoped(ctx context.Context, id uuid.UUID, scope policy.Scope) (*models.Owner, error) {
	args := []interface{}{id}
	sql := baseSelectOwner() + " WHERE o.id=$1 AND " + ownerScopeSQL(scope, "o", &args)
	return scanOwner(r.db.QueryRow(ctx, sql, args...))
}

func (r *ownerRepo) ListScoped(ctx context.Context, scope policy.Scope) ([]*models.Owner, error) {
	args := []interface{}{}
	sql := baseSelectOwner() + " WHERE " + ownerScopeSQL(scope, "o", &args) + " ORDER BY o.name"
	return r.list(ctx, sql, args...)
}

// ListUnaccounted returns in-scope owners without a login account yet;
// they are the candidates when creating an owner account.
func (r *ownerRepo) ListUnaccounted(ctx context.Context, scope policy.Scope) ([]*models.Owner, error) {
	args := []interface{}{}
	sql := baseSelectOwner() +
		" WHERE NOT EXISTS (SELECT 1 FROM owner_accounts oa WHERE oa.owner_id = o.id)" +
		" AND " + ownerScopeSQL(scope, "o", &args) +
		" ORDER BY o.name"
	return r.list(ctx, sql, args...)
}

func (r *ownerRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Owner, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Owner
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ownerRepo) Update(ctx context.Context, o *models.Owner) error {
	_, err := r.db.Exec(ctx, `UPDATE owners SET name=$1, phone=$2 WHERE id=$3`, o.Name, o.Phone, o.ID)
	return err
}

func (r *ownerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.deleteOwner(ctx, id, false)
}

func (r *ownerRepo) DeleteWithUnlink(ctx context.Context, id uuid.UUID) error {
	return r.deleteOwner(ctx, id, true)
}

// deleteOwner runs the unlink, the login-account removal, the owner
// delete and the user reap in one transaction. A RESTRICT rejection
// rolls everything back, so a blocked delete leaves the account intact.
func (r *ownerRepo) deleteOwner(ctx context.Context, id uuid.UUID, unlink bool) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if unlink {
		if _, err = tx.Exec(ctx, `UPDATE apartments SET owner_id=NULL, updated_at=NOW() WHERE owner_id=$1`, id); err != nil {
			return err
		}
	}

	var accountUserID uuid.UUID
	hasAccount := true
	err = tx.QueryRow(ctx, `DELETE FROM owner_accounts WHERE owner_id=$1 RETURNING user_id`, id).Scan(&accountUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		hasAccount = false
		err = nil
	}
	if err != nil {
		return err
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `DELETE FROM owners WHERE id=$1`, id)
	if err != nil {
		err = translateRestrict(err)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = pgx.ErrNoRows
		return err
	}
	if hasAccount {
		err = reapOrphanedUser(ctx, tx, accountUserID)
	}
	return err
}

func translateRestrict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return utils.ErrReferentialConflict
	}
	return err
}

func baseSelectOwner() string {
	return `SELECT o.id, o.name, o.phone, o.created_at FROM owners o`
}

func scanOwner(row pgx.Row) (*models.Owner, error) {
	var o models.Owner
	err := row.Scan(&o.ID, &o.Name, &o.Phone, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}
