package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// ParkingService manages parking zones and their spots.
type ParkingService struct {
	parkingRepo  repositories.ParkingRepository
	entranceRepo repositories.EntranceRepository
	ownerRepo    repositories.OwnerRepository
}

func NewParkingService(
	parkingRepo repositories.ParkingRepository,
	entranceRepo repositories.EntranceRepository,
	ownerRepo repositories.OwnerRepository,
) *ParkingService {
	return &ParkingService{parkingRepo, entranceRepo, ownerRepo}
}

// ------------------------------- zones -------------------------------

type ParkingZoneInput struct {
	EntranceID uuid.UUID
	Type       *string
	Location   *string
}

func (s *ParkingService) CreateZone(ctx context.Context, role policy.Role, in ParkingZoneInput) (*models.ParkingZone, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityParkingZone); err != nil {
		return nil, utils.Forbidden("no access to create parking zones")
	}
	if err := s.requireEntranceVisible(ctx, role, in.EntranceID); err != nil {
		return nil, err
	}
	z := &models.ParkingZone{ID: uuid.New(), EntranceID: in.EntranceID, Type: in.Type, Location: in.Location}
	if err := s.parkingRepo.CreateZone(ctx, z); err != nil {
		utils.Logger.WithError(err).Error("create parking zone")
		return nil, err
	}
	return z, nil
}

func (s *ParkingService) GetZone(ctx context.Context, role policy.Role, id uuid.UUID) (*models.ParkingZone, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityParkingZone)
	if err != nil {
		return nil, utils.Forbidden("no access to parking zones")
	}
	z, err := s.parkingRepo.GetZoneScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, utils.NotFound("parking zone not found")
	}
	return z, nil
}

func (s *ParkingService) ListZones(ctx context.Context, role policy.Role) ([]*models.ParkingZone, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityParkingZone)
	if err != nil {
		return nil, utils.Forbidden("no access to parking zones")
	}
	return s.parkingRepo.ListZonesScoped(ctx, scope)
}

func (s *ParkingService) UpdateZone(ctx context.Context, role policy.Role, id uuid.UUID, in ParkingZoneInput) (*models.ParkingZone, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityParkingZone)
	if err != nil {
		return nil, utils.Forbidden("no access to edit parking zones")
	}
	z, err := s.parkingRepo.GetZoneScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, utils.NotFound("parking zone not found")
	}
	z.Type = in.Type
	z.Location = in.Location
	if err := s.parkingRepo.UpdateZone(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

// DeleteZone cascades to the zone's spots.
func (s *ParkingService) DeleteZone(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityParkingZone)
	if err != nil {
		return utils.Forbidden("no access to delete parking zones")
	}
	z, err := s.parkingRepo.GetZoneScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if z == nil {
		return utils.NotFound("parking zone not found")
	}
	return s.parkingRepo.DeleteZone(ctx, id)
}

// ------------------------------- spots -------------------------------

type ParkingSpotInput struct {
	ZoneID  uuid.UUID
	OwnerID uuid.UUID
	Number  int
	Status  *string
}

func (s *ParkingService) CreateSpot(ctx context.Context, role policy.Role, in ParkingSpotInput) (*models.ParkingSpot, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityParkingSpot); err != nil {
		return nil, utils.Forbidden("no access to create parking spots")
	}
	if _, err := s.GetZone(ctx, role, in.ZoneID); err != nil {
		return nil, err
	}
	if err := s.requireOwnerExists(ctx, role, in.OwnerID); err != nil {
		return nil, err
	}
	sp := &models.ParkingSpot{ID: uuid.New(), ZoneID: in.ZoneID, OwnerID: in.OwnerID, Number: in.Number, Status: in.Status}
	if err := s.parkingRepo.CreateSpot(ctx, sp); err != nil {
		utils.Logger.WithError(err).Error("create parking spot")
		return nil, err
	}
	return sp, nil
}

func (s *ParkingService) GetSpot(ctx context.Context, role policy.Role, id uuid.UUID) (*models.ParkingSpot, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityParkingSpot)
	if err != nil {
		return nil, utils.Forbidden("no access to parking spots")
	}
	sp, err := s.parkingRepo.GetSpotScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, utils.NotFound("parking spot not found")
	}
	return sp, nil
}

func (s *ParkingService) ListSpots(ctx context.Context, role policy.Role) ([]*models.ParkingSpot, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityParkingSpot)
	if err != nil {
		return nil, utils.Forbidden("no access to parking spots")
	}
	return s.parkingRepo.ListSpotsScoped(ctx, scope)
}

func (s *ParkingService) ListSpotsByZone(ctx context.Context, role policy.Role, zoneID uuid.UUID) ([]*models.ParkingSpot, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityParkingSpot)
	if err != nil {
		return nil, utils.Forbidden("no access to parking spots")
	}
	if _, err := s.GetZone(ctx, role, zoneID); err != nil {
		return nil, err
	}
	return s.parkingRepo.ListSpotsByZoneID(ctx, zoneID, scope)
}

func (s *ParkingService) UpdateSpot(ctx context.Context, role policy.Role, id uuid.UUID, in ParkingSpotInput) (*models.ParkingSpot, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityParkingSpot)
	if err != nil {
		return nil, utils.Forbidden("no access to edit parking spots")
	}
	sp, err := s.parkingRepo.GetSpotScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, utils.NotFound("parking spot not found")
	}
	if err := s.requireOwnerExists(ctx, role, in.OwnerID); err != nil {
		return nil, err
	}
	sp.OwnerID = in.OwnerID
	sp.Number = in.Number
	sp.Status = in.Status
	if err := s.parkingRepo.UpdateSpot(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *ParkingService) DeleteSpot(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityParkingSpot)
	if err != nil {
		return utils.Forbidden("no access to delete parking spots")
	}
	sp, err := s.parkingRepo.GetSpotScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if sp == nil {
		return utils.NotFound("parking spot not found")
	}
	return s.parkingRepo.DeleteSpot(ctx, id)
}

// ------------------------------ helpers ------------------------------

func (s *ParkingService) requireEntranceVisible(ctx context.Context, role policy.Role, entranceID uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityEntrance)
	if err != nil {
		return utils.Forbidden("no access to entrances")
	}
	e, err := s.entranceRepo.GetScoped(ctx, entranceID, scope)
	if err != nil {
		return err
	}
	if e == nil {
		return utils.NotFound("entrance not found")
	}
	return nil
}

// Spots require an owner; like apartments, the link is an existence check
// because owning a spot is itself a way into the complex.
func (s *ParkingService) requireOwnerExists(ctx context.Context, role policy.Role, ownerID uuid.UUID) error {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityOwner); err != nil {
		return utils.Forbidden("no access to owners")
	}
	o, err := s.ownerRepo.GetScoped(ctx, ownerID, policy.Unrestricted())
	if err != nil {
		return err
	}
	if o == nil {
		return utils.NotFound("owner not found")
	}
	return nil
}
