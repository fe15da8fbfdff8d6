package repositories

import (
	"fmt"

	"github.com/osbbhub/complex-service/internal/policy"
)

/* ------------------------------------------------------------------
   Scope predicate builders

   These translate a policy.Scope into SQL fragments walking the
   entrance -> building -> complex chain. Every repository applies the
   identical fragment to list queries and single-row fetches, which is
   what keeps instance access exactly as narrow as list access. An
   out-of-scope row therefore scans as pgx.ErrNoRows, indistinguishable
   from a row that does not exist.
------------------------------------------------------------------ */

// entranceInComplex ties an entrance_id column to a complex via its
// building. Arg position n must already hold the complex ID.
func entranceInComplex(entranceCol string, n int) string {
	return fmt.Sprintf(`EXISTS (
        SELECT 1 FROM entrances se
        JOIN buildings sb ON sb.id = se.building_id
        WHERE se.id = %s AND sb.complex_id = $%d)`, entranceCol, n)
}

// apartmentInComplex ties an apartment_id column to a complex through the
// full apartment -> entrance -> building chain. NULL apartment links fall
// outside every complex scope.
func apartmentInComplex(apartmentCol string, n int) string {
	return fmt.Sprintf(`EXISTS (
        SELECT 1 FROM apartments sa
        JOIN entrances se ON se.id = sa.entrance_id
        JOIN buildings sb ON sb.id = se.building_id
        WHERE sa.id = %s AND sb.complex_id = $%d)`, apartmentCol, n)
}

// ownerInComplex is the "owner holds at least one apartment in C"
// membership test used to scope owners for complex admins.
func ownerInComplex(ownerCol string, n int) string {
	return fmt.Sprintf(`EXISTS (
        SELECT 1 FROM apartments sa
        JOIN entrances se ON se.id = sa.entrance_id
        JOIN buildings sb ON sb.id = se.building_id
        WHERE sa.owner_id = %s AND sb.complex_id = $%d)`, ownerCol, n)
}

// scopeDenied is appended for scope kinds an entity has no predicate for.
// Matching zero rows beats accidentally matching all of them.
const scopeDenied = "FALSE"

// scopeArg appends the scope's parameter value and returns its position.
func scopeArg(args *[]interface{}, v interface{}) int {
	*args = append(*args, v)
	return len(*args)
}

// Per-entity translations. Each returns a predicate to AND into a WHERE
// clause, extending args as needed.

func complexScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return fmt.Sprintf("%s.id = $%d", alias, scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func buildingScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return fmt.Sprintf("%s.complex_id = $%d", alias, scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func entranceScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		n := scopeArg(args, s.ComplexID)
		return fmt.Sprintf(`EXISTS (
            SELECT 1 FROM buildings sb
            WHERE sb.id = %s.building_id AND sb.complex_id = $%d)`, alias, n)
	default:
		return scopeDenied
	}
}

func apartmentScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return entranceInComplex(alias+".entrance_id", scopeArg(args, s.ComplexID))
	case policy.ScopeOwner:
		return fmt.Sprintf("%s.owner_id = $%d", alias, scopeArg(args, s.OwnerID))
	default:
		return scopeDenied
	}
}

func ownerScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return ownerInComplex(alias+".id", scopeArg(args, s.ComplexID))
	case policy.ScopeOwner:
		return fmt.Sprintf("%s.id = $%d", alias, scopeArg(args, s.OwnerID))
	default:
		return scopeDenied
	}
}

func residentScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return apartmentInComplex(alias+".apartment_id", scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func staffScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return fmt.Sprintf("%s.complex_id = $%d", alias, scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func parkingZoneScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return entranceInComplex(alias+".entrance_id", scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func parkingSpotScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		n := scopeArg(args, s.ComplexID)
		return fmt.Sprintf(`EXISTS (
            SELECT 1 FROM parking_zones sz
            JOIN entrances se ON se.id = sz.entrance_id
            JOIN buildings sb ON sb.id = se.building_id
            WHERE sz.id = %s.parking_zone_id AND sb.complex_id = $%d)`, alias, n)
	case policy.ScopeOwner:
		return fmt.Sprintf("%s.owner_id = $%d", alias, scopeArg(args, s.OwnerID))
	default:
		return scopeDenied
	}
}

func storageScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return apartmentInComplex(alias+".apartment_id", scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func visitorScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return apartmentInComplex(alias+".apartment_id", scopeArg(args, s.ComplexID))
	default:
		return scopeDenied
	}
}

func ticketScopeSQL(s policy.Scope, alias string, args *[]interface{}) string {
	switch s.Kind {
	case policy.ScopeAll:
		return "TRUE"
	case policy.ScopeComplex:
		return apartmentInComplex(alias+".apartment_id", scopeArg(args, s.ComplexID))
	case policy.ScopeOwner:
		return fmt.Sprintf("%s.owner_id = $%d", alias, scopeArg(args, s.OwnerID))
	default:
		return scopeDenied
	}
}
