package services

// In-memory repository fakes. Scope checks mirror the SQL predicates:
// complex membership comes from an explicit id -> complex map the test
// seeds, owner scope from the owner link on the row itself.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/utils"
)

func inComplexScope(scope policy.Scope, complexOf map[uuid.UUID]uuid.UUID, id uuid.UUID) bool {
	switch scope.Kind {
	case policy.ScopeAll:
		return true
	case policy.ScopeComplex:
		return complexOf[id] == scope.ComplexID
	default:
		return false
	}
}

// ----------------------------- apartments -----------------------------

type fakeApartmentRepo struct {
	items     map[uuid.UUID]*models.Apartment
	complexOf map[uuid.UUID]uuid.UUID
}

func newFakeApartmentRepo() *fakeApartmentRepo {
	return &fakeApartmentRepo{
		items:     map[uuid.UUID]*models.Apartment{},
		complexOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeApartmentRepo) add(a *models.Apartment, complexID uuid.UUID) {
	f.items[a.ID] = a
	f.complexOf[a.ID] = complexID
}

func (f *fakeApartmentRepo) visible(a *models.Apartment, scope policy.Scope) bool {
	switch scope.Kind {
	case policy.ScopeAll:
		return true
	case policy.ScopeComplex:
		return f.complexOf[a.ID] == scope.ComplexID
	case policy.ScopeOwner:
		return a.OwnerID != nil && *a.OwnerID == scope.OwnerID
	default:
		return false
	}
}

func (f *fakeApartmentRepo) Create(_ context.Context, a *models.Apartment) error {
	f.items[a.ID] = a
	return nil
}

func (f *fakeApartmentRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Apartment, error) {
	a, ok := f.items[id]
	if !ok || !f.visible(a, scope) {
		return nil, nil
	}
	return a, nil
}

func (f *fakeApartmentRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.Apartment, error) {
	var out []*models.Apartment
	for _, a := range f.items {
		if f.visible(a, scope) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApartmentRepo) ListByEntranceID(_ context.Context, entranceID uuid.UUID) ([]*models.Apartment, error) {
	var out []*models.Apartment
	for _, a := range f.items {
		if a.EntranceID == entranceID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApartmentRepo) ListByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*models.Apartment, error) {
	var out []*models.Apartment
	for _, a := range f.items {
		if a.OwnerID != nil && *a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApartmentRepo) Update(_ context.Context, a *models.Apartment) error {
	f.items[a.ID] = a
	return nil
}

func (f *fakeApartmentRepo) UpdateIfVersion(_ context.Context, a *models.Apartment, _ int64) (pgconn.CommandTag, error) {
	f.items[a.ID] = a
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeApartmentRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.Apartment) error) error {
	a, ok := f.items[id]
	if !ok {
		return utils.ErrNotFound
	}
	return mutate(a)
}

func (f *fakeApartmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------ buildings -----------------------------

type fakeBuildingRepo struct {
	items map[uuid.UUID]*models.Building
}

func newFakeBuildingRepo() *fakeBuildingRepo {
	return &fakeBuildingRepo{items: map[uuid.UUID]*models.Building{}}
}

func (f *fakeBuildingRepo) Create(_ context.Context, b *models.Building) error {
	f.items[b.ID] = b
	return nil
}

func (f *fakeBuildingRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Building, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if scope.Kind == policy.ScopeComplex && b.ComplexID != scope.ComplexID {
		return nil, nil
	}
	if scope.Kind == policy.ScopeOwner {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBuildingRepo) ListByComplexID(_ context.Context, complexID uuid.UUID) ([]*models.Building, error) {
	var out []*models.Building
	for _, b := range f.items {
		if b.ComplexID == complexID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBuildingRepo) Update(_ context.Context, b *models.Building) error {
	f.items[b.ID] = b
	return nil
}

func (f *fakeBuildingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------ entrances -----------------------------

type fakeEntranceRepo struct {
	items     map[uuid.UUID]*models.Entrance
	complexOf map[uuid.UUID]uuid.UUID
}

func newFakeEntranceRepo() *fakeEntranceRepo {
	return &fakeEntranceRepo{
		items:     map[uuid.UUID]*models.Entrance{},
		complexOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeEntranceRepo) Create(_ context.Context, e *models.Entrance) error {
	f.items[e.ID] = e
	return nil
}

func (f *fakeEntranceRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Entrance, error) {
	e, ok := f.items[id]
	if !ok || !inComplexScope(scope, f.complexOf, id) {
		return nil, nil
	}
	return e, nil
}

func (f *fakeEntranceRepo) ListByBuildingID(_ context.Context, buildingID uuid.UUID) ([]*models.Entrance, error) {
	var out []*models.Entrance
	for _, e := range f.items {
		if e.BuildingID == buildingID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntranceRepo) Update(_ context.Context, e *models.Entrance) error {
	f.items[e.ID] = e
	return nil
}

func (f *fakeEntranceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------- owners -------------------------------

type fakeOwnerRepo struct {
	items      map[uuid.UUID]*models.Owner
	complexOf  map[uuid.UUID]uuid.UUID
	accounted  map[uuid.UUID]bool
	apartments map[uuid.UUID]int
	spots      map[uuid.UUID]int

	// Mirrors the transactional delete: the login account goes with the
	// owner, and only when the delete itself goes through.
	accounts *fakeAccountRepo
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{
		items:      map[uuid.UUID]*models.Owner{},
		complexOf:  map[uuid.UUID]uuid.UUID{},
		accounted:  map[uuid.UUID]bool{},
		apartments: map[uuid.UUID]int{},
		spots:      map[uuid.UUID]int{},
	}
}

func (f *fakeOwnerRepo) visible(o *models.Owner, scope policy.Scope) bool {
	switch scope.Kind {
	case policy.ScopeAll:
		return true
	case policy.ScopeComplex:
		return f.complexOf[o.ID] == scope.ComplexID
	case policy.ScopeOwner:
		return o.ID == scope.OwnerID
	default:
		return false
	}
}

func (f *fakeOwnerRepo) Create(_ context.Context, o *models.Owner) error {
	f.items[o.ID] = o
	return nil
}

func (f *fakeOwnerRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Owner, error) {
	o, ok := f.items[id]
	if !ok || !f.visible(o, scope) {
		return nil, nil
	}
	return o, nil
}

func (f *fakeOwnerRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.Owner, error) {
	var out []*models.Owner
	for _, o := range f.items {
		if f.visible(o, scope) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOwnerRepo) ListUnaccounted(_ context.Context, scope policy.Scope) ([]*models.Owner, error) {
	var out []*models.Owner
	for _, o := range f.items {
		if f.visible(o, scope) && !f.accounted[o.ID] {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOwnerRepo) Update(_ context.Context, o *models.Owner) error {
	f.items[o.ID] = o
	return nil
}

func (f *fakeOwnerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.apartments[id] > 0 || f.spots[id] > 0 {
		return utils.ErrReferentialConflict
	}
	delete(f.items, id)
	f.dropAccount(ctx, id)
	return nil
}

func (f *fakeOwnerRepo) DeleteWithUnlink(ctx context.Context, id uuid.UUID) error {
	if f.spots[id] > 0 {
		return utils.ErrReferentialConflict
	}
	f.apartments[id] = 0
	delete(f.items, id)
	f.dropAccount(ctx, id)
	return nil
}

func (f *fakeOwnerRepo) dropAccount(ctx context.Context, ownerID uuid.UUID) {
	if f.accounts != nil {
		_ = f.accounts.DeleteOwnerAccountByOwnerID(ctx, ownerID)
	}
}

// ------------------------------ residents -----------------------------

type fakeResidentRepo struct {
	items     map[uuid.UUID]*models.Resident
	complexOf map[uuid.UUID]uuid.UUID
}

func newFakeResidentRepo() *fakeResidentRepo {
	return &fakeResidentRepo{
		items:     map[uuid.UUID]*models.Resident{},
		complexOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeResidentRepo) Create(_ context.Context, res *models.Resident) error {
	f.items[res.ID] = res
	return nil
}

func (f *fakeResidentRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Resident, error) {
	res, ok := f.items[id]
	if !ok || !inComplexScope(scope, f.complexOf, id) {
		return nil, nil
	}
	return res, nil
}

func (f *fakeResidentRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.Resident, error) {
	var out []*models.Resident
	for id, res := range f.items {
		if inComplexScope(scope, f.complexOf, id) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeResidentRepo) ListByApartmentID(_ context.Context, apartmentID uuid.UUID, scope policy.Scope) ([]*models.Resident, error) {
	var out []*models.Resident
	for id, res := range f.items {
		if res.ApartmentID != nil && *res.ApartmentID == apartmentID && inComplexScope(scope, f.complexOf, id) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeResidentRepo) Update(_ context.Context, res *models.Resident) error {
	f.items[res.ID] = res
	return nil
}

func (f *fakeResidentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// -------------------------------- staff -------------------------------

type fakeStaffRepo struct {
	items     map[uuid.UUID]*models.Staff
	accounted map[uuid.UUID]bool
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{
		items:     map[uuid.UUID]*models.Staff{},
		accounted: map[uuid.UUID]bool{},
	}
}

func (f *fakeStaffRepo) visible(st *models.Staff, scope policy.Scope) bool {
	switch scope.Kind {
	case policy.ScopeAll:
		return true
	case policy.ScopeComplex:
		return st.ComplexID == scope.ComplexID
	default:
		return false
	}
}

func (f *fakeStaffRepo) Create(_ context.Context, st *models.Staff) error {
	f.items[st.ID] = st
	return nil
}

func (f *fakeStaffRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Staff, error) {
	st, ok := f.items[id]
	if !ok || !f.visible(st, scope) {
		return nil, nil
	}
	return st, nil
}

func (f *fakeStaffRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.Staff, error) {
	var out []*models.Staff
	for _, st := range f.items {
		if f.visible(st, scope) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) ListUnaccounted(_ context.Context, scope policy.Scope) ([]*models.Staff, error) {
	var out []*models.Staff
	for _, st := range f.items {
		if f.visible(st, scope) && !f.accounted[st.ID] {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStaffRepo) Update(_ context.Context, st *models.Staff) error {
	f.items[st.ID] = st
	return nil
}

func (f *fakeStaffRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------ visitors ------------------------------

type fakeVisitorRepo struct {
	items     map[uuid.UUID]*models.Visitor
	complexOf map[uuid.UUID]uuid.UUID
}

func newFakeVisitorRepo() *fakeVisitorRepo {
	return &fakeVisitorRepo{
		items:     map[uuid.UUID]*models.Visitor{},
		complexOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeVisitorRepo) Create(_ context.Context, v *models.Visitor) error {
	f.items[v.ID] = v
	return nil
}

func (f *fakeVisitorRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.Visitor, error) {
	v, ok := f.items[id]
	if !ok || !inComplexScope(scope, f.complexOf, id) {
		return nil, nil
	}
	return v, nil
}

func (f *fakeVisitorRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.Visitor, error) {
	var out []*models.Visitor
	for id, v := range f.items {
		if inComplexScope(scope, f.complexOf, id) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (f *fakeVisitorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeVisitorRepo) PurgeOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, v := range f.items {
		if v.CreatedAt.Before(cutoff) {
			delete(f.items, id)
			removed++
		}
	}
	return removed, nil
}

// ------------------------------- tickets ------------------------------

type fakeTicketRepo struct {
	items     map[uuid.UUID]*models.MaintenanceRequest
	complexOf map[uuid.UUID]uuid.UUID
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		items:     map[uuid.UUID]*models.MaintenanceRequest{},
		complexOf: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeTicketRepo) visible(m *models.MaintenanceRequest, scope policy.Scope) bool {
	switch scope.Kind {
	case policy.ScopeAll:
		return true
	case policy.ScopeComplex:
		return f.complexOf[m.ID] == scope.ComplexID
	case policy.ScopeOwner:
		return m.OwnerID == scope.OwnerID
	default:
		return false
	}
}

func (f *fakeTicketRepo) Create(_ context.Context, m *models.MaintenanceRequest) error {
	f.items[m.ID] = m
	return nil
}

func (f *fakeTicketRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.MaintenanceRequest, error) {
	m, ok := f.items[id]
	if !ok || !f.visible(m, scope) {
		return nil, nil
	}
	return m, nil
}

func (f *fakeTicketRepo) ListScoped(_ context.Context, scope policy.Scope) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for _, m := range f.items {
		if f.visible(m, scope) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) Update(_ context.Context, m *models.MaintenanceRequest) error {
	f.items[m.ID] = m
	return nil
}

func (f *fakeTicketRepo) UpdateIfVersion(_ context.Context, m *models.MaintenanceRequest, _ int64) (pgconn.CommandTag, error) {
	f.items[m.ID] = m
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeTicketRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.MaintenanceRequest) error) error {
	m, ok := f.items[id]
	if !ok {
		return utils.ErrNotFound
	}
	return mutate(m)
}

func (f *fakeTicketRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------ complexes -----------------------------

type fakeComplexRepo struct {
	items map[uuid.UUID]*models.ResidentialComplex
}

func newFakeComplexRepo() *fakeComplexRepo {
	return &fakeComplexRepo{items: map[uuid.UUID]*models.ResidentialComplex{}}
}

func (f *fakeComplexRepo) Create(_ context.Context, c *models.ResidentialComplex) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeComplexRepo) GetScoped(_ context.Context, id uuid.UUID, scope policy.Scope) (*models.ResidentialComplex, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if scope.Kind == policy.ScopeComplex && c.ID != scope.ComplexID {
		return nil, nil
	}
	if scope.Kind == policy.ScopeOwner {
		return nil, nil
	}
	return c, nil
}

func (f *fakeComplexRepo) ListScoped(_ context.Context, scope policy.Scope, _ string) ([]*models.ResidentialComplex, error) {
	var out []*models.ResidentialComplex
	for _, c := range f.items {
		if scope.Kind == policy.ScopeAll || (scope.Kind == policy.ScopeComplex && c.ID == scope.ComplexID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeComplexRepo) Update(_ context.Context, c *models.ResidentialComplex) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeComplexRepo) UpdateIfVersion(_ context.Context, c *models.ResidentialComplex, _ int64) (pgconn.CommandTag, error) {
	f.items[c.ID] = c
	return pgconn.CommandTag("UPDATE 1"), nil
}

func (f *fakeComplexRepo) UpdateWithRetry(_ context.Context, id uuid.UUID, mutate func(*models.ResidentialComplex) error) error {
	c, ok := f.items[id]
	if !ok {
		return utils.ErrNotFound
	}
	return mutate(c)
}

func (f *fakeComplexRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

// ------------------------------ accounts ------------------------------

type fakeAccountRepo struct {
	users      map[uuid.UUID]*models.User
	admins     map[uuid.UUID]*models.ComplexAdminProfile
	ownerAccts map[uuid.UUID]*models.OwnerAccount // keyed by owner ID
	staffAccts map[uuid.UUID]*models.StaffAccount // keyed by staff ID
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		users:      map[uuid.UUID]*models.User{},
		admins:     map[uuid.UUID]*models.ComplexAdminProfile{},
		ownerAccts: map[uuid.UUID]*models.OwnerAccount{},
		staffAccts: map[uuid.UUID]*models.StaffAccount{},
	}
}

func (f *fakeAccountRepo) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeAccountRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateUserEmail(_ context.Context, userID uuid.UUID, email string) error {
	if u, ok := f.users[userID]; ok {
		u.Email = email
	}
	return nil
}

func (f *fakeAccountRepo) GetComplexAdminByUserID(_ context.Context, userID uuid.UUID) (*models.ComplexAdminProfile, error) {
	for _, p := range f.admins {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetOwnerAccountByUserID(_ context.Context, userID uuid.UUID) (*models.OwnerAccount, error) {
	for _, a := range f.ownerAccts {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetStaffAccountByUserID(_ context.Context, userID uuid.UUID) (*models.StaffAccount, error) {
	for _, a := range f.staffAccts {
		if a.UserID == userID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetStaffByID(_ context.Context, _ uuid.UUID) (*models.Staff, error) {
	return nil, nil
}

func (f *fakeAccountRepo) insertUser(u *models.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return utils.ErrUsernameExists
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeAccountRepo) CreateComplexAdmin(_ context.Context, user *models.User, complexID uuid.UUID) (*models.ComplexAdminProfile, error) {
	if err := f.insertUser(user); err != nil {
		return nil, err
	}
	p := &models.ComplexAdminProfile{ID: uuid.New(), UserID: user.ID, ComplexID: complexID}
	f.admins[p.ID] = p
	return p, nil
}

func (f *fakeAccountRepo) CreateOwnerAccount(_ context.Context, user *models.User, ownerID uuid.UUID) (*models.OwnerAccount, error) {
	if f.ownerAccts[ownerID] != nil {
		return nil, utils.ErrAccountExists
	}
	if err := f.insertUser(user); err != nil {
		return nil, err
	}
	a := &models.OwnerAccount{ID: uuid.New(), UserID: user.ID, OwnerID: ownerID}
	f.ownerAccts[ownerID] = a
	return a, nil
}

func (f *fakeAccountRepo) CreateStaffAccount(_ context.Context, user *models.User, staffID uuid.UUID, access models.StaffAccessType) (*models.StaffAccount, error) {
	if f.staffAccts[staffID] != nil {
		return nil, utils.ErrAccountExists
	}
	if err := f.insertUser(user); err != nil {
		return nil, err
	}
	a := &models.StaffAccount{ID: uuid.New(), UserID: user.ID, StaffID: staffID, AccessType: access}
	f.staffAccts[staffID] = a
	return a, nil
}

func (f *fakeAccountRepo) GetComplexAdminByID(_ context.Context, id uuid.UUID) (*models.ComplexAdminProfile, error) {
	return f.admins[id], nil
}

func (f *fakeAccountRepo) GetOwnerAccountByOwnerID(_ context.Context, ownerID uuid.UUID) (*models.OwnerAccount, error) {
	return f.ownerAccts[ownerID], nil
}

func (f *fakeAccountRepo) GetStaffAccountByStaffID(_ context.Context, staffID uuid.UUID) (*models.StaffAccount, error) {
	return f.staffAccts[staffID], nil
}

func (f *fakeAccountRepo) ListComplexAdmins(_ context.Context) ([]*models.ComplexAdminProfile, error) {
	var out []*models.ComplexAdminProfile
	for _, p := range f.admins {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeAccountRepo) ListOwnerAccountsByComplex(_ context.Context, _ uuid.UUID) ([]*models.OwnerAccount, error) {
	var out []*models.OwnerAccount
	for _, a := range f.ownerAccts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAccountRepo) ListStaffAccountsByComplex(_ context.Context, _ uuid.UUID) ([]*models.StaffAccount, error) {
	var out []*models.StaffAccount
	for _, a := range f.staffAccts {
		out = append(out, a)
	}
	return out, nil
}

// reapUser mirrors the production rule: the user row stays only while the
// superuser flag or some profile still references it.
func (f *fakeAccountRepo) reapUser(userID uuid.UUID) {
	u, ok := f.users[userID]
	if !ok || u.IsSuperuser {
		return
	}
	for _, p := range f.admins {
		if p.UserID == userID {
			return
		}
	}
	for _, a := range f.ownerAccts {
		if a.UserID == userID {
			return
		}
	}
	for _, a := range f.staffAccts {
		if a.UserID == userID {
			return
		}
	}
	delete(f.users, userID)
}

func (f *fakeAccountRepo) DeleteComplexAdmin(_ context.Context, id uuid.UUID) error {
	p, ok := f.admins[id]
	if !ok {
		return nil
	}
	delete(f.admins, id)
	f.reapUser(p.UserID)
	return nil
}

func (f *fakeAccountRepo) DeleteOwnerAccountByOwnerID(_ context.Context, ownerID uuid.UUID) error {
	a, ok := f.ownerAccts[ownerID]
	if !ok {
		return nil
	}
	delete(f.ownerAccts, ownerID)
	f.reapUser(a.UserID)
	return nil
}

func (f *fakeAccountRepo) DeleteStaffAccountByStaffID(_ context.Context, staffID uuid.UUID) error {
	a, ok := f.staffAccts[staffID]
	if !ok {
		return nil
	}
	delete(f.staffAccts, staffID)
	f.reapUser(a.UserID)
	return nil
}
