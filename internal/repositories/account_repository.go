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

const uniqueViolation = "23505"

// AccountRepository owns login identities and their role profiles. It
// also enforces the lifecycle rule: a user whose last profile is removed
// is deleted in the same transaction, unless the user is a superuser.
type AccountRepository interface {
	policy.ProfileDirectory

	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) error

	// Profile creation makes the user and the profile atomically. A taken
	// username surfaces as utils.ErrUsernameExists; a subject that already
	// has an account as utils.ErrAccountExists.
	CreateComplexAdmin(ctx context.Context, user *models.User, complexID uuid.UUID) (*models.ComplexAdminProfile, error)
	CreateOwnerAccount(ctx context.Context, user *models.User, ownerID uuid.UUID) (*models.OwnerAccount, error)
	CreateStaffAccount(ctx context.Context, user *models.User, staffID uuid.UUID, access models.StaffAccessType) (*models.StaffAccount, error)

	GetComplexAdminByID(ctx context.Context, id uuid.UUID) (*models.ComplexAdminProfile, error)
	GetOwnerAccountByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.OwnerAccount, error)
	GetStaffAccountByStaffID(ctx context.Context, staffID uuid.UUID) (*models.StaffAccount, error)

	ListComplexAdmins(ctx context.Context) ([]*models.ComplexAdminProfile, error)
	ListOwnerAccountsByComplex(ctx context.Context, complexID uuid.UUID) ([]*models.OwnerAccount, error)
	ListStaffAccountsByComplex(ctx context.Context, complexID uuid.UUID) ([]*models.StaffAccount, error)

	// Profile deletion reaps the orphaned user in the same transaction.
	// Deleting an absent profile is a no-op.
	DeleteComplexAdmin(ctx context.Context, id uuid.UUID) error
	DeleteOwnerAccountByOwnerID(ctx context.Context, ownerID uuid.UUID) error
	DeleteStaffAccountByStaffID(ctx context.Context, staffID uuid.UUID) error
}

type accountRepo struct {
	db DB
}

func NewAccountRepository(db DB) AccountRepository {
	return &accountRepo{db: db}
}

// ----------------------------- users -----------------------------

func (r *accountRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, baseSelectUser()+` WHERE u.id=$1`, id))
}

func (r *accountRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, baseSelectUser()+` WHERE u.username=$1`, username))
}

func (r *accountRepo) UpdateUserEmail(ctx context.Context, userID uuid.UUID, email string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET email=$1 WHERE id=$2`, email, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *accountRepo) insertUser(ctx context.Context, tx pgx.Tx, user *models.User) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO users (id, username, email, password_hash, is_superuser, created_at)
        VALUES ($1,$2,$3,$4,$5, NOW())
    `, user.ID, user.Username, user.Email, user.PasswordHash, user.IsSuperuser)
	return translateUnique(err, utils.ErrUsernameExists)
}

// ------------------------- profile creation -------------------------

func (r *accountRepo) CreateComplexAdmin(ctx context.Context, user *models.User, complexID uuid.UUID) (*models.ComplexAdminProfile, error) {
	profile := &models.ComplexAdminProfile{ID: uuid.New(), UserID: user.ID, ComplexID: complexID}
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := r.insertUser(ctx, tx, user); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO complex_admin_profiles (id, user_id, complex_id, created_at)
            VALUES ($1,$2,$3, NOW())
        `, profile.ID, profile.UserID, profile.ComplexID)
		return translateUnique(err, utils.ErrAccountExists)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *accountRepo) CreateOwnerAccount(ctx context.Context, user *models.User, ownerID uuid.UUID) (*models.OwnerAccount, error) {
	acct := &models.OwnerAccount{ID: uuid.New(), UserID: user.ID, OwnerID: ownerID}
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := r.insertUser(ctx, tx, user); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO owner_accounts (id, user_id, owner_id, created_at)
            VALUES ($1,$2,$3, NOW())
        `, acct.ID, acct.UserID, acct.OwnerID)
		return translateUnique(err, utils.ErrAccountExists)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func (r *accountRepo) CreateStaffAccount(ctx context.Context, user *models.User, staffID uuid.UUID, access models.StaffAccessType) (*models.StaffAccount, error) {
	acct := &models.StaffAccount{ID: uuid.New(), UserID: user.ID, StaffID: staffID, AccessType: access}
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := r.insertUser(ctx, tx, user); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO staff_accounts (id, user_id, staff_id, access_type, created_at)
            VALUES ($1,$2,$3,$4, NOW())
        `, acct.ID, acct.UserID, acct.StaffID, acct.AccessType)
		return translateUnique(err, utils.ErrAccountExists)
	})
	if err != nil {
		return nil, err
	}
	return acct, nil
}

// -------------------------- profile lookups --------------------------

func (r *accountRepo) GetComplexAdminByUserID(ctx context.Context, userID uuid.UUID) (*models.ComplexAdminProfile, error) {
	return scanComplexAdmin(r.db.QueryRow(ctx, baseSelectComplexAdmin()+` WHERE p.user_id=$1`, userID))
}

func (r *accountRepo) GetComplexAdminByID(ctx context.Context, id uuid.UUID) (*models.ComplexAdminProfile, error) {
	return scanComplexAdmin(r.db.QueryRow(ctx, baseSelectComplexAdmin()+` WHERE p.id=$1`, id))
}

func (r *accountRepo) GetOwnerAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.OwnerAccount, error) {
	return scanOwnerAccount(r.db.QueryRow(ctx, baseSelectOwnerAccount()+` WHERE a.user_id=$1`, userID))
}

func (r *accountRepo) GetOwnerAccountByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.OwnerAccount, error) {
	return scanOwnerAccount(r.db.QueryRow(ctx, baseSelectOwnerAccount()+` WHERE a.owner_id=$1`, ownerID))
}

func (r *accountRepo) GetStaffAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.StaffAccount, error) {
	return scanStaffAccount(r.db.QueryRow(ctx, baseSelectStaffAccount()+` WHERE a.user_id=$1`, userID))
}

func (r *accountRepo) GetStaffAccountByStaffID(ctx context.Context, staffID uuid.UUID) (*models.StaffAccount, error) {
	return scanStaffAccount(r.db.QueryRow(ctx, baseSelectStaffAccount()+` WHERE a.staff_id=$1`, staffID))
}

func (r *accountRepo) GetStaffByID(ctx context.Context, id uuid.UUID) (*models.Staff, error) {
	return scanStaff(r.db.QueryRow(ctx, baseSelectStaff()+` WHERE s.id=$1`, id))
}

func (r *accountRepo) ListComplexAdmins(ctx context.Context) ([]*models.ComplexAdminProfile, error) {
	rows, err := r.db.Query(ctx, baseSelectComplexAdmin()+` ORDER BY p.created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.ComplexAdminProfile
	for rows.Next() {
		p, err := scanComplexAdmin(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *accountRepo) ListOwnerAccountsByComplex(ctx context.Context, complexID uuid.UUID) ([]*models.OwnerAccount, error) {
	rows, err := r.db.Query(ctx, baseSelectOwnerAccount()+` WHERE `+ownerInComplex("a.owner_id", 1)+` ORDER BY a.created_at`, complexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.OwnerAccount
	for rows.Next() {
		a, err := scanOwnerAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *accountRepo) ListStaffAccountsByComplex(ctx context.Context, complexID uuid.UUID) ([]*models.StaffAccount, error) {
	rows, err := r.db.Query(ctx, baseSelectStaffAccount()+`
        WHERE EXISTS (SELECT 1 FROM staff s WHERE s.id = a.staff_id AND s.complex_id = $1)
        ORDER BY a.created_at`, complexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.StaffAccount
	for rows.Next() {
		a, err := scanStaffAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ------------------------- profile deletion -------------------------

func (r *accountRepo) DeleteComplexAdmin(ctx context.Context, id uuid.UUID) error {
	return r.deleteProfile(ctx, `DELETE FROM complex_admin_profiles WHERE id=$1 RETURNING user_id`, id)
}

func (r *accountRepo) DeleteOwnerAccountByOwnerID(ctx context.Context, ownerID uuid.UUID) error {
	return r.deleteProfile(ctx, `DELETE FROM owner_accounts WHERE owner_id=$1 RETURNING user_id`, ownerID)
}

func (r *accountRepo) DeleteStaffAccountByStaffID(ctx context.Context, staffID uuid.UUID) error {
	return r.deleteProfile(ctx, `DELETE FROM staff_accounts WHERE staff_id=$1 RETURNING user_id`, staffID)
}

func (r *accountRepo) deleteProfile(ctx context.Context, sql string, key uuid.UUID) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var userID uuid.UUID
		err := tx.QueryRow(ctx, sql, key).Scan(&userID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		return reapOrphanedUser(ctx, tx, userID)
	})
}

// reapOrphanedUser deletes the user when no role profile remains and the
// user is not a superuser. Runs inside the profile-deletion transaction
// so the identity and its last profile go together or not at all.
func reapOrphanedUser(ctx context.Context, tx pgx.Tx, userID uuid.UUID) error {
	var keep bool
	err := tx.QueryRow(ctx, `
        SELECT u.is_superuser
            OR EXISTS (SELECT 1 FROM complex_admin_profiles p WHERE p.user_id = u.id)
            OR EXISTS (SELECT 1 FROM owner_accounts a WHERE a.user_id = u.id)
            OR EXISTS (SELECT 1 FROM staff_accounts a WHERE a.user_id = u.id)
        FROM users u WHERE u.id = $1
    `, userID).Scan(&keep)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if keep {
		return nil
	}
	_, err = tx.Exec(ctx, `DELETE FROM users WHERE id=$1`, userID)
	return err
}

// ------------------------------ helpers ------------------------------

func (r *accountRepo) inTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

func translateUnique(err error, to error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return to
	}
	return err
}

func baseSelectUser() string {
	return `SELECT u.id, u.username, u.email, u.password_hash, u.is_superuser, u.created_at FROM users u`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func baseSelectComplexAdmin() string {
	return `SELECT p.id, p.user_id, p.complex_id, p.created_at FROM complex_admin_profiles p`
}

func scanComplexAdmin(row pgx.Row) (*models.ComplexAdminProfile, error) {
	var p models.ComplexAdminProfile
	err := row.Scan(&p.ID, &p.UserID, &p.ComplexID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func baseSelectOwnerAccount() string {
	return `SELECT a.id, a.user_id, a.owner_id, a.created_at FROM owner_accounts a`
}

func scanOwnerAccount(row pgx.Row) (*models.OwnerAccount, error) {
	var a models.OwnerAccount
	err := row.Scan(&a.ID, &a.UserID, &a.OwnerID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func baseSelectStaffAccount() string {
	return `SELECT a.id, a.user_id, a.staff_id, a.access_type, a.created_at FROM staff_accounts a`
}

func scanStaffAccount(row pgx.Row) (*models.StaffAccount, error) {
	var a models.StaffAccount
	err := row.Scan(&a.ID, &a.UserID, &a.StaffID, &a.AccessType, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
