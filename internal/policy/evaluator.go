package policy

import (
	"github.com/osbbhub/complex-service/internal/utils"
)

// Action is the operation a principal wants to perform on an entity class.
type Action int

const (
	ActionView Action = iota
	ActionCreate
	ActionEdit
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionEdit:
		return "edit"
	case ActionDelete:
		return "delete"
	default:
		return "view"
	}
}

// Entity enumerates the classes the evaluator knows about.
type Entity int

const (
	EntityComplex Entity = iota
	EntityBuilding
	EntityEntrance
	EntityApartment
	EntityOwner
	EntityResident
	EntityStaff
	EntityParkingZone
	EntityParkingSpot
	EntityStorageRoom
	EntityVisitor
	EntityTicket
)

// Authorize decides whether role may perform action on an entity class and,
// on permit, returns the scope predicate every query for that class must
// carry. Deny is utils.ErrForbidden; callers surface it as 403 for class
// operations and as not-found for instance operations that miss the scope.
//
// Rules worth calling out:
//   - the superadmin check short-circuits everything except tickets, which
//     remain a staff/owner concern at every level;
//   - all "scoped to complex C" predicates walk the entrance -> building ->
//     complex chain (or staff.complex_id), not a direct foreign key;
//   - technician-access staff are locked out of storage rooms entirely;
//   - guard-access staff own the visitor logbook and resident records of
//     their complex, nothing else.
func Authorize(role Role, action Action, entity Entity) (Scope, error) {
	if role.Kind == RoleSuperadmin {
		if entity == EntityTicket {
			return Scope{}, utils.ErrForbidden
		}
		return Unrestricted(), nil
	}

	switch role.Kind {
	case RoleComplexAdmin:
		return authorizeComplexAdmin(role, action, entity)
	case RoleOwner:
		return authorizeOwner(role, action, entity)
	case RoleStaff:
		return authorizeStaff(role, action, entity)
	default:
		return Scope{}, utils.ErrForbidden
	}
}

func authorizeComplexAdmin(role Role, action Action, entity Entity) (Scope, error) {
	scoped := ComplexScope(role.ComplexID)

	switch entity {
	case EntityComplex:
		// Admins see and edit their own complex. Creating complexes and
		// deleting any complex stays with the superadmin.
		if action == ActionView || action == ActionEdit {
			return scoped, nil
		}
		return Scope{}, utils.ErrForbidden

	case EntityBuilding, EntityEntrance, EntityApartment,
		EntityResident, EntityStaff,
		EntityParkingZone, EntityParkingSpot,
		EntityStorageRoom:
		return scoped, nil

	case EntityOwner:
		// Owners have no complex column; the scope resolves through
		// "has at least one apartment in this complex". Create is allowed
		// so admins can register owners for their buildings.
		return scoped, nil

	case EntityVisitor:
		if action == ActionView {
			return scoped, nil
		}
		return Scope{}, utils.ErrForbidden

	default:
		return Scope{}, utils.ErrForbidden
	}
}

func authorizeOwner(role Role, action Action, entity Entity) (Scope, error) {
	scoped := OwnerScope(role.OwnerID)

	switch entity {
	case EntityApartment:
		if action == ActionView {
			return scoped, nil
		}
		return Scope{}, utils.ErrForbidden

	case EntityTicket:
		// Owners file tickets and watch them; status moves only through
		// maintenance staff.
		if action == ActionView || action == ActionCreate {
			return scoped, nil
		}
		return Scope{}, utils.ErrForbidden

	default:
		return Scope{}, utils.ErrForbidden
	}
}

func authorizeStaff(role Role, action Action, entity Entity) (Scope, error) {
	scoped := ComplexScope(role.ComplexID)

	if role.IsGuard() {
		switch entity {
		case EntityResident:
			return scoped, nil
		case EntityVisitor:
			if action == ActionView || action == ActionCreate || action == ActionDelete {
				return scoped, nil
			}
		case EntityApartment:
			// Guards pick apartments when logging visitors or residents.
			if action == ActionView {
				return scoped, nil
			}
		}
		return Scope{}, utils.ErrForbidden
	}

	if role.IsTechnician() {
		switch entity {
		case EntityTicket:
			// View the board, take/finish work, clear finished tickets.
			// The "done before delete" rule is enforced on the instance.
			if action != ActionCreate {
				return scoped, nil
			}
		}
		return Scope{}, utils.ErrForbidden
	}

	return Scope{}, utils.ErrForbidden
}
