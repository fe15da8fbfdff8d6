package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/utils"
)

type ticketFixture struct {
	svc        *MaintenanceService
	tickets    *fakeTicketRepo
	apartments *fakeApartmentRepo
	complexID  uuid.UUID
	ownerID    uuid.UUID
	owner      policy.Role
	technician policy.Role
}

func newTicketFixture() *ticketFixture {
	tickets := newFakeTicketRepo()
	apartments := newFakeApartmentRepo()
	complexID := uuid.New()
	ownerID := uuid.New()
	return &ticketFixture{
		svc:        NewMaintenanceService(tickets, apartments),
		tickets:    tickets,
		apartments: apartments,
		complexID:  complexID,
		ownerID:    ownerID,
		owner:      policy.OwnerRole(uuid.New(), ownerID),
		technician: policy.StaffRole(uuid.New(), uuid.New(), complexID, models.AccessMaintenance),
	}
}

func (fx *ticketFixture) addApartment(ownerID uuid.UUID) *models.Apartment {
	a := &models.Apartment{ID: uuid.New(), EntranceID: uuid.New(), OwnerID: &ownerID, Number: 1, Floor: 1, Rooms: 2}
	fx.apartments.add(a, fx.complexID)
	return a
}

func (fx *ticketFixture) addTicket(ownerID, apartmentID uuid.UUID, status models.TicketStatus) *models.MaintenanceRequest {
	m := &models.MaintenanceRequest{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		ApartmentID: apartmentID,
		Description: "leaking radiator",
		Status:      status,
	}
	fx.tickets.items[m.ID] = m
	fx.tickets.complexOf[m.ID] = fx.complexID
	return m
}

func TestTicketCreateStartsNew(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)

	m, err := fx.svc.Create(context.Background(), fx.owner, TicketInput{
		ApartmentID: apt.ID,
		Description: "broken intercom",
	})
	require.NoError(t, err)
	require.Equal(t, models.TicketNew, m.Status)
	require.Equal(t, fx.ownerID, m.OwnerID)
}

func TestTicketCreateRejectsForeignApartment(t *testing.T) {
	fx := newTicketFixture()
	other := fx.addApartment(uuid.New())

	_, err := fx.svc.Create(context.Background(), fx.owner, TicketInput{
		ApartmentID: other.ID,
		Description: "broken intercom",
	})
	requireStatus(t, err, http.StatusNotFound)
}

func TestTicketCreateDeniedForStaff(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)

	_, err := fx.svc.Create(context.Background(), fx.technician, TicketInput{
		ApartmentID: apt.ID,
		Description: "broken intercom",
	})
	requireStatus(t, err, http.StatusForbidden)
}

func TestTicketLifecycle(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)
	m := fx.addTicket(fx.ownerID, apt.ID, models.TicketNew)

	taken, err := fx.svc.Take(context.Background(), fx.technician, m.ID)
	require.NoError(t, err)
	require.Equal(t, models.TicketInProgress, taken.Status)

	done, err := fx.svc.MarkDone(context.Background(), fx.technician, m.ID)
	require.NoError(t, err)
	require.Equal(t, models.TicketDone, done.Status)

	require.NoError(t, fx.svc.Delete(context.Background(), fx.technician, m.ID))
	require.NotContains(t, fx.tickets.items, m.ID)
}

func TestTicketStatusNeverMovesBackwards(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)

	done := fx.addTicket(fx.ownerID, apt.ID, models.TicketDone)
	_, err := fx.svc.Take(context.Background(), fx.technician, done.ID)
	requireStatus(t, err, http.StatusConflict)
	require.ErrorIs(t, err, utils.ErrInvalidTransition)

	fresh := fx.addTicket(fx.ownerID, apt.ID, models.TicketNew)
	_, err = fx.svc.MarkDone(context.Background(), fx.technician, fresh.ID)
	requireStatus(t, err, http.StatusConflict)
}

func TestTicketDeleteRequiresDone(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)
	m := fx.addTicket(fx.ownerID, apt.ID, models.TicketInProgress)

	err := fx.svc.Delete(context.Background(), fx.technician, m.ID)
	requireStatus(t, err, http.StatusConflict)
	require.Contains(t, fx.tickets.items, m.ID)
}

func TestTicketOwnerCannotMoveOrDelete(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)
	m := fx.addTicket(fx.ownerID, apt.ID, models.TicketNew)

	_, err := fx.svc.Take(context.Background(), fx.owner, m.ID)
	requireStatus(t, err, http.StatusForbidden)

	err = fx.svc.Delete(context.Background(), fx.owner, m.ID)
	requireStatus(t, err, http.StatusForbidden)
}

func TestTicketOwnerSeesOnlyOwnTickets(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)
	mine := fx.addTicket(fx.ownerID, apt.ID, models.TicketNew)
	foreign := fx.addTicket(uuid.New(), apt.ID, models.TicketNew)

	list, err := fx.svc.List(context.Background(), fx.owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, mine.ID, list[0].ID)

	// A ticket outside the owner's scope reads as missing, not forbidden.
	_, err = fx.svc.Get(context.Background(), fx.owner, foreign.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestTicketTechnicianScopedToComplex(t *testing.T) {
	fx := newTicketFixture()
	apt := fx.addApartment(fx.ownerID)
	m := fx.addTicket(fx.ownerID, apt.ID, models.TicketNew)
	fx.tickets.complexOf[m.ID] = uuid.New() // another complex

	_, err := fx.svc.Take(context.Background(), fx.technician, m.ID)
	requireStatus(t, err, http.StatusNotFound)
}

func TestTicketsDeniedForSuperadmin(t *testing.T) {
	fx := newTicketFixture()
	root := policy.Superadmin(uuid.New())

	_, err := fx.svc.List(context.Background(), root)
	requireStatus(t, err, http.StatusForbidden)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var appErr *utils.AppError
	require.Error(t, err)
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	require.Equal(t, status, appErr.StatusCode)
}
