package policy

import (
	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
)

// RoleKind tags the role value produced by the resolver. A principal
// resolves to exactly one kind per request; downstream code switches on
// the tag instead of probing for profiles ad hoc.
type RoleKind int

const (
	RoleUnaffiliated RoleKind = iota
	RoleSuperadmin
	RoleComplexAdmin
	RoleOwner
	RoleStaff
)

func (k RoleKind) String() string {
	switch k {
	case RoleSuperadmin:
		return "superadmin"
	case RoleComplexAdmin:
		return "complex_admin"
	case RoleOwner:
		return "owner"
	case RoleStaff:
		return "staff"
	default:
		return "unaffiliated"
	}
}

// Role is the tagged union of principal roles. Only the fields for the
// active Kind are populated.
type Role struct {
	Kind   RoleKind
	UserID uuid.UUID

	// RoleComplexAdmin and RoleStaff
	ComplexID uuid.UUID

	// RoleOwner
	OwnerID uuid.UUID

	// RoleStaff
	StaffID    uuid.UUID
	AccessType models.StaffAccessType
}

func Superadmin(userID uuid.UUID) Role {
	return Role{Kind: RoleSuperadmin, UserID: userID}
}

func ComplexAdmin(userID, complexID uuid.UUID) Role {
	return Role{Kind: RoleComplexAdmin, UserID: userID, ComplexID: complexID}
}

func OwnerRole(userID, ownerID uuid.UUID) Role {
	return Role{Kind: RoleOwner, UserID: userID, OwnerID: ownerID}
}

func StaffRole(userID, staffID, complexID uuid.UUID, access models.StaffAccessType) Role {
	return Role{Kind: RoleStaff, UserID: userID, StaffID: staffID, ComplexID: complexID, AccessType: access}
}

func Unaffiliated() Role { return Role{Kind: RoleUnaffiliated} }

// IsGuard reports whether the role is staff with guard access.
func (r Role) IsGuard() bool {
	return r.Kind == RoleStaff && r.AccessType == models.AccessGuard
}

// IsTechnician reports whether the role is staff with maintenance access.
func (r Role) IsTechnician() bool {
	return r.Kind == RoleStaff && r.AccessType == models.AccessMaintenance
}
