package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// VisitorService runs the guard logbook. Guards write it, complex admins
// read it, nobody edits entries after the fact.
type VisitorService struct {
	visitorRepo   repositories.VisitorRepository
	apartmentRepo repositories.ApartmentRepository
	retention     time.Duration
}

func NewVisitorService(
	visitorRepo repositories.VisitorRepository,
	apartmentRepo repositories.ApartmentRepository,
	retention time.Duration,
) *VisitorService {
	return &VisitorService{visitorRepo, apartmentRepo, retention}
}

type VisitorInput struct {
	ApartmentID *uuid.UUID
	FullName    string
	Purpose     string
}

// Create logs a visit. The entry records the logging user so the trail
// survives even after the apartment link is severed.
func (s *VisitorService) Create(ctx context.Context, role policy.Role, in VisitorInput) (*models.Visitor, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityVisitor); err != nil {
		return nil, utils.Forbidden("no access to log visitors")
	}
	if err := s.requireApartmentVisible(ctx, role, in.ApartmentID); err != nil {
		return nil, err
	}
	addedBy := role.UserID
	v := &models.Visitor{
		ID:          uuid.New(),
		ApartmentID: in.ApartmentID,
		AddedByID:   &addedBy,
		FullName:    in.FullName,
		Purpose:     in.Purpose,
	}
	if err := s.visitorRepo.Create(ctx, v); err != nil {
		utils.Logger.WithError(err).Error("log visitor")
		return nil, err
	}
	return v, nil
}

func (s *VisitorService) Get(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Visitor, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityVisitor)
	if err != nil {
		return nil, utils.Forbidden("no access to the visitor log")
	}
	v, err := s.visitorRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, utils.NotFound("visitor entry not found")
	}
	return v, nil
}

func (s *VisitorService) List(ctx context.Context, role policy.Role) ([]*models.Visitor, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityVisitor)
	if err != nil {
		return nil, utils.Forbidden("no access to the visitor log")
	}
	return s.visitorRepo.ListScoped(ctx, scope)
}

func (s *VisitorService) Delete(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityVisitor)
	if err != nil {
		return utils.Forbidden("no access to delete visitor entries")
	}
	v, err := s.visitorRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if v == nil {
		return utils.NotFound("visitor entry not found")
	}
	return s.visitorRepo.Delete(ctx, id)
}

// PurgeExpired drops logbook entries past the retention window. Runs from
// the scheduler, not from a request, so there is no role to check.
func (s *VisitorService) PurgeExpired(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	n, err := s.visitorRepo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		utils.Logger.WithError(err).Error("purge visitor log")
		return
	}
	if n > 0 {
		utils.Logger.WithField("removed", n).Info("purged expired visitor entries")
	}
}

func (s *VisitorService) requireApartmentVisible(ctx context.Context, role policy.Role, apartmentID *uuid.UUID) error {
	if apartmentID == nil {
		return nil
	}
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityApartment)
	if err != nil {
		return utils.Forbidden("no access to apartments")
	}
	a, err := s.apartmentRepo.GetScoped(ctx, *apartmentID, scope)
	if err != nil {
		return err
	}
	if a == nil {
		return utils.NotFound("apartment not found")
	}
	return nil
}
