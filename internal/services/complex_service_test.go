package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type complexFixture struct {
	svc        *ComplexService
	complexes  *fakeComplexRepo
	buildings  *fakeBuildingRepo
	entrances  *fakeEntranceRepo
	apartments *fakeApartmentRepo
	owners     *fakeOwnerRepo
	complexID  uuid.UUID
	admin      policy.Role
	root       policy.Role
}

func newComplexFixture() *complexFixture {
	complexes := newFakeComplexRepo()
	buildings := newFakeBuildingRepo()
	entrances := newFakeEntranceRepo()
	apartments := newFakeApartmentRepo()
	owners := newFakeOwnerRepo()
	complexID := uuid.New()
	complexes.items[complexID] = &models.ResidentialComplex{ID: complexID, Name: "Green Park", Address: "1 Main St"}
	return &complexFixture{
		svc:        NewComplexService(complexes, buildings, entrances, apartments, owners),
		complexes:  complexes,
		buildings:  buildings,
		entrances:  entrances,
		apartments: apartments,
		owners:     owners,
		complexID:  complexID,
		admin:      policy.ComplexAdmin(uuid.New(), complexID),
		root:       policy.Superadmin(uuid.New()),
	}
}

func (fx *complexFixture) addEntrance() *models.Entrance {
	b := &models.Building{ID: uuid.New(), ComplexID: fx.complexID, Number: 1, Floors: 8}
	fx.buildings.items[b.ID] = b
	e := &models.Entrance{ID: uuid.New(), BuildingID: b.ID, Number: 1}
	fx.entrances.items[e.ID] = e
	fx.entrances.complexOf[e.ID] = fx.complexID
	return e
}

func TestCreateComplexSuperadminOnly(t *testing.T) {
	fx := newComplexFixture()

	_, err := fx.svc.CreateComplex(context.Background(), fx.admin, ComplexInput{Name: "New", Address: "2 Side St"})
	requireStatus(t, err, http.StatusForbidden)

	c, err := fx.svc.CreateComplex(context.Background(), fx.root, ComplexInput{Name: "New", Address: "2 Side St"})
	require.NoError(t, err)
	require.Contains(t, fx.complexes.items, c.ID)
}

func TestDeleteComplexSuperadminOnly(t *testing.T) {
	fx := newComplexFixture()

	err := fx.svc.DeleteComplex(context.Background(), fx.admin, fx.complexID)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, fx.svc.DeleteComplex(context.Background(), fx.root, fx.complexID))
	require.NotContains(t, fx.complexes.items, fx.complexID)
}

func TestAdminSeesOnlyOwnComplex(t *testing.T) {
	fx := newComplexFixture()
	other := &models.ResidentialComplex{ID: uuid.New(), Name: "Lake View", Address: "9 Far St"}
	fx.complexes.items[other.ID] = other

	list, err := fx.svc.ListComplexes(context.Background(), fx.admin, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, fx.complexID, list[0].ID)

	// The foreign complex reads as missing rather than forbidden.
	_, err = fx.svc.GetComplex(context.Background(), fx.admin, other.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestUpdateComplexInScope(t *testing.T) {
	fx := newComplexFixture()

	c, err := fx.svc.UpdateComplex(context.Background(), fx.admin, fx.complexID, ComplexInput{Name: "Green Park II", Address: "1 Main St"})
	require.NoError(t, err)
	require.Equal(t, "Green Park II", c.Name)
}

func TestCreateBuildingOutsideScope(t *testing.T) {
	fx := newComplexFixture()
	other := &models.ResidentialComplex{ID: uuid.New(), Name: "Lake View", Address: "9 Far St"}
	fx.complexes.items[other.ID] = other

	_, err := fx.svc.CreateBuilding(context.Background(), fx.admin, BuildingInput{ComplexID: other.ID, Number: 3, Floors: 5})
	requireStatus(t, err, http.StatusNotFound)
}

func TestCreateApartmentLinksFreshOwner(t *testing.T) {
	fx := newComplexFixture()
	e := fx.addEntrance()

	// A freshly registered owner has no apartments yet and so is outside
	// every complex scope; linking must still work.
	o := &models.Owner{ID: uuid.New(), Name: "Maria Petrova"}
	fx.owners.items[o.ID] = o

	a, err := fx.svc.CreateApartment(context.Background(), fx.admin, ApartmentInput{
		EntranceID: e.ID,
		OwnerID:    &o.ID,
		Number:     12,
		Floor:      4,
		Rooms:      3,
	})
	require.NoError(t, err)
	require.NotNil(t, a.OwnerID)
	require.Equal(t, o.ID, *a.OwnerID)
}

func TestCreateApartmentUnknownOwner(t *testing.T) {
	fx := newComplexFixture()
	e := fx.addEntrance()
	missing := uuid.New()

	_, err := fx.svc.CreateApartment(context.Background(), fx.admin, ApartmentInput{
		EntranceID: e.ID,
		OwnerID:    &missing,
		Number:     12,
		Floor:      4,
		Rooms:      3,
	})
	requireStatus(t, err, http.StatusNotFound)
}

func TestOwnerViewsOwnApartmentOnly(t *testing.T) {
	fx := newComplexFixture()
	ownerID := uuid.New()
	owner := policy.OwnerRole(uuid.New(), ownerID)

	mine := &models.Apartment{ID: uuid.New(), EntranceID: uuid.New(), OwnerID: &ownerID, Number: 1, Floor: 1, Rooms: 2}
	fx.apartments.add(mine, fx.complexID)
	neighbour := &models.Apartment{ID: uuid.New(), EntranceID: uuid.New(), Number: 2, Floor: 1, Rooms: 2}
	fx.apartments.add(neighbour, fx.complexID)

	got, err := fx.svc.GetApartment(context.Background(), owner, mine.ID)
	require.NoError(t, err)
	require.Equal(t, mine.ID, got.ID)

	_, err = fx.svc.GetApartment(context.Background(), owner, neighbour.ID)
	requireStatus(t, err, http.StatusNotFound)

	_, err = fx.svc.UpdateApartment(context.Background(), owner, mine.ID, ApartmentInput{Number: 1, Floor: 1, Rooms: 2})
	requireStatus(t, err, http.StatusForbidden)
}

func TestUnaffiliatedDenied(t *testing.T) {
	fx := newComplexFixture()

	_, err := fx.svc.ListComplexes(context.Background(), policy.Unaffiliated(), "")
	requireStatus(t, err, http.StatusForbidden)
}
