package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
)

type visitorFixture struct {
	svc        *VisitorService
	visitors   *fakeVisitorRepo
	apartments *fakeApartmentRepo
	complexID  uuid.UUID
	guard      policy.Role
}

func newVisitorFixture(retention time.Duration) *visitorFixture {
	visitors := newFakeVisitorRepo()
	apartments := newFakeApartmentRepo()
	complexID := uuid.New()
	return &visitorFixture{
		svc:        NewVisitorService(visitors, apartments, retention),
		visitors:   visitors,
		apartments: apartments,
		complexID:  complexID,
		guard:      policy.StaffRole(uuid.New(), uuid.New(), complexID, models.AccessGuard),
	}
}

func TestVisitorCreateRecordsLoggingUser(t *testing.T) {
	fx := newVisitorFixture(90 * 24 * time.Hour)
	apt := &models.Apartment{ID: uuid.New(), EntranceID: uuid.New(), Number: 7, Floor: 3, Rooms: 2}
	fx.apartments.add(apt, fx.complexID)

	v, err := fx.svc.Create(context.Background(), fx.guard, VisitorInput{
		ApartmentID: &apt.ID,
		FullName:    "Petar Ivanov",
		Purpose:     "delivery",
	})
	require.NoError(t, err)
	require.NotNil(t, v.AddedByID)
	require.Equal(t, fx.guard.UserID, *v.AddedByID)
}

func TestVisitorCreateWithoutApartment(t *testing.T) {
	fx := newVisitorFixture(90 * 24 * time.Hour)

	v, err := fx.svc.Create(context.Background(), fx.guard, VisitorInput{
		FullName: "Petar Ivanov",
		Purpose:  "asking for directions",
	})
	require.NoError(t, err)
	require.Nil(t, v.ApartmentID)
}

func TestVisitorCreateRejectsForeignApartment(t *testing.T) {
	fx := newVisitorFixture(90 * 24 * time.Hour)
	apt := &models.Apartment{ID: uuid.New(), EntranceID: uuid.New(), Number: 7, Floor: 3, Rooms: 2}
	fx.apartments.add(apt, uuid.New())

	_, err := fx.svc.Create(context.Background(), fx.guard, VisitorInput{
		ApartmentID: &apt.ID,
		FullName:    "Petar Ivanov",
		Purpose:     "delivery",
	})
	requireStatus(t, err, http.StatusNotFound)
}

func TestVisitorAdminReadOnly(t *testing.T) {
	fx := newVisitorFixture(90 * 24 * time.Hour)
	admin := policy.ComplexAdmin(uuid.New(), fx.complexID)
	v := &models.Visitor{ID: uuid.New(), FullName: "Petar Ivanov", Purpose: "delivery"}
	fx.visitors.items[v.ID] = v
	fx.visitors.complexOf[v.ID] = fx.complexID

	got, err := fx.svc.Get(context.Background(), admin, v.ID)
	require.NoError(t, err)
	require.Equal(t, v.ID, got.ID)

	_, err = fx.svc.Create(context.Background(), admin, VisitorInput{FullName: "X", Purpose: "Y"})
	requireStatus(t, err, http.StatusForbidden)

	err = fx.svc.Delete(context.Background(), admin, v.ID)
	requireStatus(t, err, http.StatusForbidden)
}

func TestVisitorPurgeExpired(t *testing.T) {
	fx := newVisitorFixture(48 * time.Hour)
	stale := &models.Visitor{ID: uuid.New(), FullName: "Old Entry", Purpose: "x", CreatedAt: time.Now().Add(-72 * time.Hour)}
	fresh := &models.Visitor{ID: uuid.New(), FullName: "New Entry", Purpose: "y", CreatedAt: time.Now().Add(-time.Hour)}
	fx.visitors.items[stale.ID] = stale
	fx.visitors.items[fresh.ID] = fresh

	fx.svc.PurgeExpired(context.Background())

	require.NotContains(t, fx.visitors.items, stale.ID)
	require.Contains(t, fx.visitors.items, fresh.ID)
}
