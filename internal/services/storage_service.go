package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// StorageService manages storage rooms. Maintenance staff never reach
// these; the evaluator denies them before any query runs.
type StorageService struct {
	storageRepo   repositories.StorageRepository
	apartmentRepo repositories.ApartmentRepository
}

func NewStorageService(storageRepo repositories.StorageRepository, apartmentRepo repositories.ApartmentRepository) *StorageService {
	return &StorageService{storageRepo, apartmentRepo}
}

type StorageRoomInput struct {
	ApartmentID *uuid.UUID
	Number      string
	Location    string
	Status      models.StorageRoomStatus
}

func (s *StorageService) Create(ctx context.Context, role policy.Role, in StorageRoomInput) (*models.StorageRoom, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityStorageRoom); err != nil {
		return nil, utils.Forbidden("no access to create storage rooms")
	}
	if err := s.requireApartmentVisible(ctx, role, in.ApartmentID); err != nil {
		return nil, err
	}
	room := &models.StorageRoom{
		ID:          uuid.New(),
		ApartmentID: in.ApartmentID,
		Number:      in.Number,
		Location:    in.Location,
		Status:      normalizeStorageStatus(in.Status, in.ApartmentID),
	}
	if err := s.storageRepo.Create(ctx, room); err != nil {
		utils.Logger.WithError(err).Error("create storage room")
		return nil, err
	}
	return room, nil
}

func (s *StorageService) Get(ctx context.Context, role policy.Role, id uuid.UUID) (*models.StorageRoom, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityStorageRoom)
	if err != nil {
		return nil, utils.Forbidden("no access to storage rooms")
	}
	room, err := s.storageRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, utils.NotFound("storage room not found")
	}
	return room, nil
}

func (s *StorageService) List(ctx context.Context, role policy.Role) ([]*models.StorageRoom, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityStorageRoom)
	if err != nil {
		return nil, utils.Forbidden("no access to storage rooms")
	}
	return s.storageRepo.ListScoped(ctx, scope)
}

func (s *StorageService) Update(ctx context.Context, role policy.Role, id uuid.UUID, in StorageRoomInput) (*models.StorageRoom, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityStorageRoom)
	if err != nil {
		return nil, utils.Forbidden("no access to edit storage rooms")
	}
	room, err := s.storageRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, utils.NotFound("storage room not found")
	}
	if err := s.requireApartmentVisible(ctx, role, in.ApartmentID); err != nil {
		return nil, err
	}
	room.ApartmentID = in.ApartmentID
	room.Number = in.Number
	room.Location = in.Location
	room.Status = normalizeStorageStatus(in.Status, in.ApartmentID)
	if err := s.storageRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *StorageService) Delete(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityStorageRoom)
	if err != nil {
		return utils.Forbidden("no access to delete storage rooms")
	}
	room, err := s.storageRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if room == nil {
		return utils.NotFound("storage room not found")
	}
	return s.storageRepo.Delete(ctx, id)
}

func (s *StorageService) requireApartmentVisible(ctx context.Context, role policy.Role, apartmentID *uuid.UUID) error {
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

// normalizeStorageStatus keeps the status column consistent with the
// apartment link: an attached room is occupied, a detached one defaults
// to free when the caller sends nothing.
func normalizeStorageStatus(status models.StorageRoomStatus, apartmentID *uuid.UUID) models.StorageRoomStatus {
	if apartmentID != nil {
		return models.StorageOccupied
	}
	if status == "" {
		return models.StorageFree
	}
	return status
}
