package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// ComplexService covers the building-stock hierarchy: complexes,
// buildings, entrances and apartments. Every method authorizes first and
// threads the resulting scope into the repository query, so a caller can
// never see or touch a row its role does not cover.
type ComplexService struct {
	complexRepo   repositories.ComplexRepository
	buildingRepo  repositories.BuildingRepository
	entranceRepo  repositories.EntranceRepository
	apartmentRepo repositories.ApartmentRepository
	ownerRepo     repositories.OwnerRepository
}

func NewComplexService(
	complexRepo repositories.ComplexRepository,
	buildingRepo repositories.BuildingRepository,
	entranceRepo repositories.EntranceRepository,
	apartmentRepo repositories.ApartmentRepository,
	ownerRepo repositories.OwnerRepository,
) *ComplexService {
	return &ComplexService{complexRepo, buildingRepo, entranceRepo, apartmentRepo, ownerRepo}
}

// ----------------------------- complexes -----------------------------

type ComplexInput struct {
	Name       string
	Address    string
	Management *string
	Contact    *string
}

func (s *ComplexService) CreateComplex(ctx context.Context, role policy.Role, in ComplexInput) (*models.ResidentialComplex, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityComplex); err != nil {
		return nil, utils.Forbidden("only the platform administrator can create complexes")
	}
	c := &models.ResidentialComplex{
		ID:         uuid.New(),
		Name:       in.Name,
		Address:    in.Address,
		Management: in.Management,
		Contact:    in.Contact,
	}
	if err := s.complexRepo.Create(ctx, c); err != nil {
		utils.Logger.WithError(err).Error("create complex")
		return nil, err
	}
	return c, nil
}

func (s *ComplexService) GetComplex(ctx context.Context, role policy.Role, id uuid.UUID) (*models.ResidentialComplex, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityComplex)
	if err != nil {
		return nil, utils.Forbidden("no access to complexes")
	}
	c, err := s.complexRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.NotFound("complex not found")
	}
	return c, nil
}

// ListComplexes filters by an optional case-insensitive name/address query.
func (s *ComplexService) ListComplexes(ctx context.Context, role policy.Role, query string) ([]*models.ResidentialComplex, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityComplex)
	if err != nil {
		return nil, utils.Forbidden("no access to complexes")
	}
	return s.complexRepo.ListScoped(ctx, scope, query)
}

func (s *ComplexService) UpdateComplex(ctx context.Context, role policy.Role, id uuid.UUID, in ComplexInput) (*models.ResidentialComplex, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityComplex)
	if err != nil {
		return nil, utils.Forbidden("no access to edit complexes")
	}
	existing, err := s.complexRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("complex not found")
	}

	err = s.complexRepo.UpdateWithRetry(ctx, id, func(c *models.ResidentialComplex) error {
		c.Name = in.Name
		c.Address = in.Address
		c.Management = in.Management
		c.Contact = in.Contact
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.complexRepo.GetScoped(ctx, id, scope)
}

// DeleteComplex cascades through buildings, entrances and apartments.
func (s *ComplexService) DeleteComplex(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityComplex)
	if err != nil {
		return utils.Forbidden("only the platform administrator can delete complexes")
	}
	existing, err := s.complexRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if existing == nil {
		return utils.NotFound("complex not found")
	}
	return s.complexRepo.Delete(ctx, id)
}

// ----------------------------- buildings -----------------------------

type BuildingInput struct {
	ComplexID uuid.UUID
	Number    int
	Floors    int
}

func (s *ComplexService) CreateBuilding(ctx context.Context, role policy.Role, in BuildingInput) (*models.Building, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityBuilding); err != nil {
		return nil, utils.Forbidden("no access to create buildings")
	}
	if err := s.requireComplexVisible(ctx, role, in.ComplexID); err != nil {
		return nil, err
	}
	b := &models.Building{ID: uuid.New(), ComplexID: in.ComplexID, Number: in.Number, Floors: in.Floors}
	if err := s.buildingRepo.Create(ctx, b); err != nil {
		utils.Logger.WithError(err).Error("create building")
		return nil, err
	}
	return b, nil
}

func (s *ComplexService) GetBuilding(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Building, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityBuilding)
	if err != nil {
		return nil, utils.Forbidden("no access to buildings")
	}
	b, err := s.buildingRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFound("building not found")
	}
	return b, nil
}

func (s *ComplexService) ListBuildings(ctx context.Context, role policy.Role, complexID uuid.UUID) ([]*models.Building, error) {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityBuilding); err != nil {
		return nil, utils.Forbidden("no access to buildings")
	}
	if err := s.requireComplexVisible(ctx, role, complexID); err != nil {
		return nil, err
	}
	return s.buildingRepo.ListByComplexID(ctx, complexID)
}

func (s *ComplexService) UpdateBuilding(ctx context.Context, role policy.Role, id uuid.UUID, number, floors int) (*models.Building, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityBuilding)
	if err != nil {
		return nil, utils.Forbidden("no access to edit buildings")
	}
	b, err := s.buildingRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, utils.NotFound("building not found")
	}
	b.Number = number
	b.Floors = floors
	if err := s.buildingRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *ComplexService) DeleteBuilding(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityBuilding)
	if err != nil {
		return utils.Forbidden("no access to delete buildings")
	}
	b, err := s.buildingRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if b == nil {
		return utils.NotFound("building not found")
	}
	return s.buildingRepo.Delete(ctx, id)
}

// ----------------------------- entrances -----------------------------

type EntranceInput struct {
	BuildingID uuid.UUID
	Number     int
}

func (s *ComplexService) CreateEntrance(ctx context.Context, role policy.Role, in EntranceInput) (*models.Entrance, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityEntrance); err != nil {
		return nil, utils.Forbidden("no access to create entrances")
	}
	// The parent building must itself be visible to the caller.
	if _, err := s.GetBuilding(ctx, role, in.BuildingID); err != nil {
		return nil, err
	}
	e := &models.Entrance{ID: uuid.New(), BuildingID: in.BuildingID, Number: in.Number}
	if err := s.entranceRepo.Create(ctx, e); err != nil {
		utils.Logger.WithError(err).Error("create entrance")
		return nil, err
	}
	return e, nil
}

func (s *ComplexService) GetEntrance(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Entrance, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityEntrance)
	if err != nil {
		return nil, utils.Forbidden("no access to entrances")
	}
	e, err := s.entranceRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, utils.NotFound("entrance not found")
	}
	return e, nil
}

func (s *ComplexService) ListEntrances(ctx context.Context, role policy.Role, buildingID uuid.UUID) ([]*models.Entrance, error) {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityEntrance); err != nil {
		return nil, utils.Forbidden("no access to entrances")
	}
	if _, err := s.GetBuilding(ctx, role, buildingID); err != nil {
		return nil, err
	}
	return s.entranceRepo.ListByBuildingID(ctx, buildingID)
}

func (s *ComplexService) UpdateEntrance(ctx context.Context, role policy.Role, id uuid.UUID, number int) (*models.Entrance, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityEntrance)
	if err != nil {
		return nil, utils.Forbidden("no access to edit entrances")
	}
	e, err := s.entranceRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, utils.NotFound("entrance not found")
	}
	e.Number = number
	if err := s.entranceRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ComplexService) DeleteEntrance(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityEntrance)
	if err != nil {
		return utils.Forbidden("no access to delete entrances")
	}
	e, err := s.entranceRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if e == nil {
		return utils.NotFound("entrance not found")
	}
	return s.entranceRepo.Delete(ctx, id)
}

// ----------------------------- apartments ----------------------------

type ApartmentInput struct {
	EntranceID uuid.UUID
	OwnerID    *uuid.UUID
	Number     int
	Floor      int
	Rooms      int
	AreaM2     *int
}

func (s *ComplexService) CreateApartment(ctx context.Context, role policy.Role, in ApartmentInput) (*models.Apartment, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityApartment); err != nil {
		return nil, utils.Forbidden("no access to create apartments")
	}
	if _, err := s.GetEntrance(ctx, role, in.EntranceID); err != nil {
		return nil, err
	}
	if err := s.requireOwnerVisible(ctx, role, in.OwnerID); err != nil {
		return nil, err
	}
	a := &models.Apartment{
		ID:         uuid.New(),
		EntranceID: in.EntranceID,
		OwnerID:    in.OwnerID,
		Number:     in.Number,
		Floor:      in.Floor,
		Rooms:      in.Rooms,
		AreaM2:     in.AreaM2,
	}
	if err := s.apartmentRepo.Create(ctx, a); err != nil {
		utils.Logger.WithError(err).Error("create apartment")
		return nil, err
	}
	return a, nil
}

func (s *ComplexService) GetApartment(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Apartment, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityApartment)
	if err != nil {
		return nil, utils.Forbidden("no access to apartments")
	}
	a, err := s.apartmentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, utils.NotFound("apartment not found")
	}
	return a, nil
}

func (s *ComplexService) ListApartments(ctx context.Context, role policy.Role) ([]*models.Apartment, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityApartment)
	if err != nil {
		return nil, utils.Forbidden("no access to apartments")
	}
	return s.apartmentRepo.ListScoped(ctx, scope)
}

func (s *ComplexService) ListApartmentsByEntrance(ctx context.Context, role policy.Role, entranceID uuid.UUID) ([]*models.Apartment, error) {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityApartment); err != nil {
		return nil, utils.Forbidden("no access to apartments")
	}
	if _, err := s.GetEntrance(ctx, role, entranceID); err != nil {
		return nil, err
	}
	return s.apartmentRepo.ListByEntranceID(ctx, entranceID)
}

func (s *ComplexService) UpdateApartment(ctx context.Context, role policy.Role, id uuid.UUID, in ApartmentInput) (*models.Apartment, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityApartment)
	if err != nil {
		return nil, utils.Forbidden("no access to edit apartments")
	}
	existing, err := s.apartmentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, utils.NotFound("apartment not found")
	}
	if err := s.requireOwnerVisible(ctx, role, in.OwnerID); err != nil {
		return nil, err
	}

	err = s.apartmentRepo.UpdateWithRetry(ctx, id, func(a *models.Apartment) error {
		a.OwnerID = in.OwnerID
		a.Number = in.Number
		a.Floor = in.Floor
		a.Rooms = in.Rooms
		a.AreaM2 = in.AreaM2
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.apartmentRepo.GetScoped(ctx, id, scope)
}

func (s *ComplexService) DeleteApartment(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityApartment)
	if err != nil {
		return utils.Forbidden("no access to delete apartments")
	}
	a, err := s.apartmentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if a == nil {
		return utils.NotFound("apartment not found")
	}
	return s.apartmentRepo.Delete(ctx, id)
}

// ------------------------------ helpers ------------------------------

func (s *ComplexService) requireComplexVisible(ctx context.Context, role policy.Role, complexID uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityComplex)
	if err != nil {
		return utils.Forbidden("no access to complexes")
	}
	c, err := s.complexRepo.GetScoped(ctx, complexID, scope)
	if err != nil {
		return err
	}
	if c == nil {
		return utils.NotFound("complex not found")
	}
	return nil
}

// requireOwnerVisible checks an apartment's owner link. The check is an
// existence check on purpose: an owner only enters a complex's scope by
// holding an apartment there, so requiring in-scope membership here would
// make a freshly registered owner impossible to link at all.
func (s *ComplexService) requireOwnerVisible(ctx context.Context, role policy.Role, ownerID *uuid.UUID) error {
	if ownerID == nil {
		return nil
	}
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityOwner); err != nil {
		return utils.Forbidden("no access to owners")
	}
	o, err := s.ownerRepo.GetScoped(ctx, *ownerID, policy.Unrestricted())
	if err != nil {
		return err
	}
	if o == nil {
		return utils.NotFound("owner not found")
	}
	return nil
}
