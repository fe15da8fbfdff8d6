package policy

import "github.com/google/uuid"

// ScopeKind selects which predicate a repository must apply before
// returning rows.
type ScopeKind int

const (
	// ScopeAll places no restriction on visible rows.
	ScopeAll ScopeKind = iota
	// ScopeComplex restricts rows to those reachable from one complex via
	// the entrance -> building -> complex chain (or staff.complex_id).
	ScopeComplex
	// ScopeOwner restricts rows to those belonging to one owner.
	ScopeOwner
)

// Scope is the predicate attached to a Permit decision. Repositories apply
// the same Scope to list queries and to single-instance fetches, so a
// single-object fetch is never broader than the list that would contain it.
type Scope struct {
	Kind      ScopeKind
	ComplexID uuid.UUID
	OwnerID   uuid.UUID
}

func Unrestricted() Scope { return Scope{Kind: ScopeAll} }

func ComplexScope(complexID uuid.UUID) Scope {
	return Scope{Kind: ScopeComplex, ComplexID: complexID}
}

func OwnerScope(ownerID uuid.UUID) Scope {
	return Scope{Kind: ScopeOwner, OwnerID: ownerID}
}
