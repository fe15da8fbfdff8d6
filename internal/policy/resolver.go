package policy

import (
	"context"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
)

// ProfileDirectory is the lookup surface the resolver needs. All methods
// return (nil, nil) when the row does not exist; absence of a profile is
// not an error.
type ProfileDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetComplexAdminByUserID(ctx context.Context, userID uuid.UUID) (*models.ComplexAdminProfile, error)
	GetOwnerAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.OwnerAccount, error)
	GetStaffAccountByUserID(ctx context.Context, userID uuid.UUID) (*models.StaffAccount, error)
	GetStaffByID(ctx context.Context, id uuid.UUID) (*models.Staff, error)
}

// Resolver maps an authenticated user ID to its single active role. The
// result is computed once per request and passed explicitly to services.
type Resolver struct {
	dir ProfileDirectory
}

func NewResolver(dir ProfileDirectory) *Resolver {
	return &Resolver{dir: dir}
}

// Resolve checks the superuser flag first, then role profiles in fixed
// precedence: complex admin, owner, staff. The schema does not forbid a
// user holding several profiles; precedence makes resolution deterministic.
// A user with no profile resolves to Unaffiliated, never an error.
func (r *Resolver) Resolve(ctx context.Context, userID uuid.UUID) (Role, error) {
	user, err := r.dir.GetUserByID(ctx, userID)
	if err != nil {
		return Unaffiliated(), err
	}
	if user == nil {
		return Unaffiliated(), nil
	}
	if user.IsSuperuser {
		return Superadmin(user.ID), nil
	}

	admin, err := r.dir.GetComplexAdminByUserID(ctx, user.ID)
	if err != nil {
		return Unaffiliated(), err
	}
	if admin != nil {
		return ComplexAdmin(user.ID, admin.ComplexID), nil
	}

	ownerAcct, err := r.dir.GetOwnerAccountByUserID(ctx, user.ID)
	if err != nil {
		return Unaffiliated(), err
	}
	if ownerAcct != nil {
		return OwnerRole(user.ID, ownerAcct.OwnerID), nil
	}

	staffAcct, err := r.dir.GetStaffAccountByUserID(ctx, user.ID)
	if err != nil {
		return Unaffiliated(), err
	}
	if staffAcct != nil {
		staff, err := r.dir.GetStaffByID(ctx, staffAcct.StaffID)
		if err != nil {
			return Unaffiliated(), err
		}
		if staff == nil {
			// Staff row gone from under the account; treat as no role.
			return Unaffiliated(), nil
		}
		return StaffRole(user.ID, staff.ID, staff.ComplexID, staffAcct.AccessType), nil
	}

	return Unaffiliated(), nil
}
