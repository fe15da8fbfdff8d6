package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
)

type fakeDirectory struct {
	users     map[uuid.UUID]*models.User
	admins    map[uuid.UUID]*models.ComplexAdminProfile
	owners    map[uuid.UUID]*models.OwnerAccount
	staffActs map[uuid.UUID]*models.StaffAccount
	staff     map[uuid.UUID]*models.Staff
	err       error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		users:     map[uuid.UUID]*models.User{},
		admins:    map[uuid.UUID]*models.ComplexAdminProfile{},
		owners:    map[uuid.UUID]*models.OwnerAccount{},
		staffActs: map[uuid.UUID]*models.StaffAccount{},
		staff:     map[uuid.UUID]*models.Staff{},
	}
}

func (f *fakeDirectory) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f.users[id], f.err
}

func (f *fakeDirectory) GetComplexAdminByUserID(_ context.Context, userID uuid.UUID) (*models.ComplexAdminProfile, error) {
	return f.admins[userID], f.err
}

func (f *fakeDirectory) GetOwnerAccountByUserID(_ context.Context, userID uuid.UUID) (*models.OwnerAccount, error) {
	return f.owners[userID], f.err
}

func (f *fakeDirectory) GetStaffAccountByUserID(_ context.Context, userID uuid.UUID) (*models.StaffAccount, error) {
	return f.staffActs[userID], f.err
}

func (f *fakeDirectory) GetStaffByID(_ context.Context, id uuid.UUID) (*models.Staff, error) {
	return f.staff[id], f.err
}

func TestResolveSuperuserWinsOverProfiles(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	dir.users[userID] = &models.User{ID: userID, IsSuperuser: true}
	// A stale admin profile must not demote the superuser.
	dir.admins[userID] = &models.ComplexAdminProfile{UserID: userID, ComplexID: uuid.New()}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleSuperadmin, role.Kind)
	require.Equal(t, userID, role.UserID)
}

func TestResolveComplexAdmin(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	complexID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}
	dir.admins[userID] = &models.ComplexAdminProfile{UserID: userID, ComplexID: complexID}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleComplexAdmin, role.Kind)
	require.Equal(t, complexID, role.ComplexID)
}

func TestResolveAdminPrecedesOwnerAndStaff(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	complexID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}
	dir.admins[userID] = &models.ComplexAdminProfile{UserID: userID, ComplexID: complexID}
	dir.owners[userID] = &models.OwnerAccount{UserID: userID, OwnerID: uuid.New()}
	dir.staffActs[userID] = &models.StaffAccount{UserID: userID, StaffID: uuid.New()}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleComplexAdmin, role.Kind)
}

func TestResolveOwnerPrecedesStaff(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	ownerID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}
	dir.owners[userID] = &models.OwnerAccount{UserID: userID, OwnerID: ownerID}
	dir.staffActs[userID] = &models.StaffAccount{UserID: userID, StaffID: uuid.New()}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleOwner, role.Kind)
	require.Equal(t, ownerID, role.OwnerID)
}

func TestResolveStaffCarriesComplexAndAccess(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	staffID := uuid.New()
	complexID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}
	dir.staffActs[userID] = &models.StaffAccount{UserID: userID, StaffID: staffID, AccessType: models.AccessGuard}
	dir.staff[staffID] = &models.Staff{ID: staffID, ComplexID: complexID}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleStaff, role.Kind)
	require.Equal(t, staffID, role.StaffID)
	require.Equal(t, complexID, role.ComplexID)
	require.True(t, role.IsGuard())
	require.False(t, role.IsTechnician())
}

func TestResolveStaffRowGoneIsUnaffiliated(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}
	dir.staffActs[userID] = &models.StaffAccount{UserID: userID, StaffID: uuid.New()}
	// No matching staff row.

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleUnaffiliated, role.Kind)
}

func TestResolveNoProfilesIsUnaffiliated(t *testing.T) {
	dir := newFakeDirectory()
	userID := uuid.New()
	dir.users[userID] = &models.User{ID: userID}

	role, err := NewResolver(dir).Resolve(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, RoleUnaffiliated, role.Kind)
}

func TestResolveUnknownUserIsUnaffiliated(t *testing.T) {
	dir := newFakeDirectory()

	role, err := NewResolver(dir).Resolve(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, RoleUnaffiliated, role.Kind)
}

func TestResolvePropagatesLookupErrors(t *testing.T) {
	dir := newFakeDirectory()
	dir.err = errors.New("connection reset")

	_, err := NewResolver(dir).Resolve(context.Background(), uuid.New())
	require.Error(t, err)
}
