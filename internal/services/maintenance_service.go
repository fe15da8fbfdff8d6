package services

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// MaintenanceService runs the ticket lifecycle. Owners file tickets,
// maintenance staff move them forward; status never moves backwards and
// only finished tickets can be cleared from the board.
type MaintenanceService struct {
	ticketRepo    repositories.MaintenanceRepository
	apartmentRepo repositories.ApartmentRepository
}

func NewMaintenanceService(
	ticketRepo repositories.MaintenanceRepository,
	apartmentRepo repositories.ApartmentRepository,
) *MaintenanceService {
	return &MaintenanceService{ticketRepo, apartmentRepo}
}

type TicketInput struct {
	ApartmentID uuid.UUID
	Description string
}

// Create files a ticket for one of the caller's own apartments. The
// status always starts at new, whatever the payload says.
func (s *MaintenanceService) Create(ctx context.Context, role policy.Role, in TicketInput) (*models.MaintenanceRequest, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityTicket); err != nil {
		return nil, utils.Forbidden("only owners can file maintenance requests")
	}

	aptScope, err := policy.Authorize(role, policy.ActionView, policy.EntityApartment)
	if err != nil {
		return nil, utils.Forbidden("no access to apartments")
	}
	apt, err := s.apartmentRepo.GetScoped(ctx, in.ApartmentID, aptScope)
	if err != nil {
		return nil, err
	}
	if apt == nil {
		return nil, utils.NotFound("apartment not found")
	}

	m := &models.MaintenanceRequest{
		ID:          uuid.New(),
		OwnerID:     role.OwnerID,
		ApartmentID: in.ApartmentID,
		Description: in.Description,
		Status:      models.TicketNew,
	}
	if err := s.ticketRepo.Create(ctx, m); err != nil {
		utils.Logger.WithError(err).Error("create maintenance request")
		return nil, err
	}
	return m, nil
}

func (s *MaintenanceService) Get(ctx context.Context, role policy.Role, id uuid.UUID) (*models.MaintenanceRequest, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityTicket)
	if err != nil {
		return nil, utils.Forbidden("no access to maintenance requests")
	}
	m, err := s.ticketRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, utils.NotFound("maintenance request not found")
	}
	return m, nil
}

// List returns the board: new first, then in progress, then done.
func (s *MaintenanceService) List(ctx context.Context, role policy.Role) ([]*models.MaintenanceRequest, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityTicket)
	if err != nil {
		return nil, utils.Forbidden("no access to maintenance requests")
	}
	return s.ticketRepo.ListScoped(ctx, scope)
}

// Take moves a new ticket into in_progress.
func (s *MaintenanceService) Take(ctx context.Context, role policy.Role, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return s.transition(ctx, role, id, models.TicketInProgress)
}

// MarkDone finishes an in-progress ticket.
func (s *MaintenanceService) MarkDone(ctx context.Context, role policy.Role, id uuid.UUID) (*models.MaintenanceRequest, error) {
	return s.transition(ctx, role, id, models.TicketDone)
}

func (s *MaintenanceService) transition(ctx context.Context, role policy.Role, id uuid.UUID, to models.TicketStatus) (*models.MaintenanceRequest, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityTicket)
	if err != nil {
		return nil, utils.Forbidden("only maintenance staff can move tickets")
	}
	existing, err := s.ticketRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("maintenance request not found")
	}

	err = s.ticketRepo.UpdateWithRetry(ctx, id, func(m *models.MaintenanceRequest) error {
		if !m.CanTransition(to) {
			return invalidTransition(m.Status, to)
		}
		m.Status = to
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.ticketRepo.GetScoped(ctx, id, scope)
}

// Delete clears a finished ticket off the board. Anything not yet done
// stays, there is no force path.
func (s *MaintenanceService) Delete(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityTicket)
	if err != nil {
		return utils.Forbidden("only maintenance staff can clear tickets")
	}
	m, err := s.ticketRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if m == nil {
		return utils.NotFound("maintenance request not found")
	}
	if m.Status != models.TicketDone {
		return invalidTransition(m.Status, models.TicketDone)
	}
	return s.ticketRepo.Delete(ctx, id)
}

func invalidTransition(from, to models.TicketStatus) *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusConflict,
		Code:       utils.ErrCodeInvalidTransition,
		Message:    "cannot move ticket from " + string(from) + " to " + string(to),
		Err:        utils.ErrInvalidTransition,
	}
}
