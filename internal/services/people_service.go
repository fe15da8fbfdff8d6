package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/repositories"
	"github.com/osbbhub/complex-service/internal/utils"
)

// PeopleService manages owners, residents and staff records.
type PeopleService struct {
	ownerRepo     repositories.OwnerRepository
	residentRepo  repositories.ResidentRepository
	staffRepo     repositories.StaffRepository
	apartmentRepo repositories.ApartmentRepository
	accountRepo   repositories.AccountRepository
}

func NewPeopleService(
	ownerRepo repositories.OwnerRepository,
	residentRepo repositories.ResidentRepository,
	staffRepo repositories.StaffRepository,
	apartmentRepo repositories.ApartmentRepository,
	accountRepo repositories.AccountRepository,
) *PeopleService {
	return &PeopleService{ownerRepo, residentRepo, staffRepo, apartmentRepo, accountRepo}
}

// ------------------------------ owners -------------------------------

type OwnerInput struct {
	Name  string
	Phone *string
}

func (s *PeopleService) CreateOwner(ctx context.Context, role policy.Role, in OwnerInput) (*models.Owner, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityOwner); err != nil {
		return nil, utils.Forbidden("no access to register owners")
	}
	o := &models.Owner{ID: uuid.New(), Name: in.Name, Phone: in.Phone}
	if err := s.ownerRepo.Create(ctx, o); err != nil {
		utils.Logger.WithError(err).Error("create owner")
		return nil, err
	}
	return o, nil
}

func (s *PeopleService) GetOwner(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Owner, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityOwner)
	if err != nil {
		return nil, utils.Forbidden("no access to owners")
	}
	o, err := s.ownerRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, utils.NotFound("owner not found")
	}
	return o, nil
}

func (s *PeopleService) ListOwners(ctx context.Context, role policy.Role) ([]*models.Owner, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityOwner)
	if err != nil {
		return nil, utils.Forbidden("no access to owners")
	}
	return s.ownerRepo.ListScoped(ctx, scope)
}

func (s *PeopleService) UpdateOwner(ctx context.Context, role policy.Role, id uuid.UUID, in OwnerInput) (*models.Owner, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityOwner)
	if err != nil {
		return nil, utils.Forbidden("no access to edit owners")
	}
	o, err := s.ownerRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, utils.NotFound("owner not found")
	}
	o.Name = in.Name
	o.Phone = in.Phone
	if err := s.ownerRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// DeleteOwner removes an owner and any login account the owner holds.
// With unlink=false the delete fails with a conflict while apartments or
// parking spots still reference the owner. With unlink=true the owner's
// apartments are detached first; parking spots still block, they have no
// unowned state. The repository runs the whole removal in a single
// transaction, so a blocked delete leaves the login account untouched.
func (s *PeopleService) DeleteOwner(ctx context.Context, role policy.Role, id uuid.UUID, unlink bool) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityOwner)
	if err != nil {
		return utils.Forbidden("no access to delete owners")
	}
	o, err := s.ownerRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if o == nil {
		return utils.NotFound("owner not found")
	}

	if unlink {
		err = s.ownerRepo.DeleteWithUnlink(ctx, id)
	} else {
		err = s.ownerRepo.Delete(ctx, id)
	}
	if errors.Is(err, utils.ErrReferentialConflict) {
		return &utils.AppError{
			StatusCode: 409,
			Code:       utils.ErrCodeConflict,
			Message:    "owner still holds apartments or parking spots",
			Err:        err,
		}
	}
	return err
}

func (s *PeopleService) ListOwnerApartments(ctx context.Context, role policy.Role, ownerID uuid.UUID) ([]*models.Apartment, error) {
	if _, err := s.GetOwner(ctx, role, ownerID); err != nil {
		return nil, err
	}
	return s.apartmentRepo.ListByOwnerID(ctx, ownerID)
}

// ----------------------------- residents -----------------------------

type ResidentInput struct {
	ApartmentID *uuid.UUID
	FullName    string
	Contact     *string
	Role        *string
}

func (s *PeopleService) CreateResident(ctx context.Context, role policy.Role, in ResidentInput) (*models.Resident, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityResident); err != nil {
		return nil, utils.Forbidden("no access to register residents")
	}
	if err := s.requireApartmentVisible(ctx, role, in.ApartmentID); err != nil {
		return nil, err
	}
	res := &models.Resident{
		ID:          uuid.New(),
		ApartmentID: in.ApartmentID,
		FullName:    in.FullName,
		Contact:     in.Contact,
		Role:        in.Role,
	}
	if err := s.residentRepo.Create(ctx, res); err != nil {
		utils.Logger.WithError(err).Error("create resident")
		return nil, err
	}
	return res, nil
}

func (s *PeopleService) GetResident(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Resident, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityResident)
	if err != nil {
		return nil, utils.Forbidden("no access to residents")
	}
	res, err := s.residentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, utils.NotFound("resident not found")
	}
	return res, nil
}

func (s *PeopleService) ListResidents(ctx context.Context, role policy.Role) ([]*models.Resident, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityResident)
	if err != nil {
		return nil, utils.Forbidden("no access to residents")
	}
	return s.residentRepo.ListScoped(ctx, scope)
}

func (s *PeopleService) UpdateResident(ctx context.Context, role policy.Role, id uuid.UUID, in ResidentInput) (*models.Resident, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityResident)
	if err != nil {
		return nil, utils.Forbidden("no access to edit residents")
	}
	res, err := s.residentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, utils.NotFound("resident not found")
	}
	if err := s.requireApartmentVisible(ctx, role, in.ApartmentID); err != nil {
		return nil, err
	}
	res.ApartmentID = in.ApartmentID
	res.FullName = in.FullName
	res.Contact = in.Contact
	res.Role = in.Role
	if err := s.residentRepo.Update(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *PeopleService) DeleteResident(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityResident)
	if err != nil {
		return utils.Forbidden("no access to delete residents")
	}
	res, err := s.residentRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if res == nil {
		return utils.NotFound("resident not found")
	}
	return s.residentRepo.Delete(ctx, id)
}

// ------------------------------- staff -------------------------------

type StaffInput struct {
	ComplexID    uuid.UUID
	FullName     string
	Contact      *string
	Role         *string
	WorkSchedule *string
}

// CreateStaff pins the record to the caller's complex: a complex admin's
// input ComplexID is overwritten with their own, never trusted.
func (s *PeopleService) CreateStaff(ctx context.Context, role policy.Role, in StaffInput) (*models.Staff, error) {
	if _, err := policy.Authorize(role, policy.ActionCreate, policy.EntityStaff); err != nil {
		return nil, utils.Forbidden("no access to register staff")
	}
	if role.Kind == policy.RoleComplexAdmin {
		in.ComplexID = role.ComplexID
	}
	st := &models.Staff{
		ID:           uuid.New(),
		ComplexID:    in.ComplexID,
		FullName:     in.FullName,
		Contact:      in.Contact,
		Role:         in.Role,
		WorkSchedule: in.WorkSchedule,
	}
	if err := s.staffRepo.Create(ctx, st); err != nil {
		utils.Logger.WithError(err).Error("create staff")
		return nil, err
	}
	return st, nil
}

func (s *PeopleService) GetStaff(ctx context.Context, role policy.Role, id uuid.UUID) (*models.Staff, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityStaff)
	if err != nil {
		return nil, utils.Forbidden("no access to staff")
	}
	st, err := s.staffRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, utils.NotFound("staff member not found")
	}
	return st, nil
}

func (s *PeopleService) ListStaff(ctx context.Context, role policy.Role) ([]*models.Staff, error) {
	scope, err := policy.Authorize(role, policy.ActionView, policy.EntityStaff)
	if err != nil {
		return nil, utils.Forbidden("no access to staff")
	}
	return s.staffRepo.ListScoped(ctx, scope)
}

func (s *PeopleService) UpdateStaff(ctx context.Context, role policy.Role, id uuid.UUID, in StaffInput) (*models.Staff, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityStaff)
	if err != nil {
		return nil, utils.Forbidden("no access to edit staff")
	}
	st, err := s.staffRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, utils.NotFound("staff member not found")
	}
	// ComplexID is immutable after creation; moving staff between
	// complexes means delete and re-register.
	if in.ComplexID != uuid.Nil && in.ComplexID != st.ComplexID {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "staff cannot be moved to another complex",
		}
	}
	st.FullName = in.FullName
	st.Contact = in.Contact
	st.Role = in.Role
	st.WorkSchedule = in.WorkSchedule
	if err := s.staffRepo.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStaff also drops the staff member's login account, which in turn
// reaps the orphaned user.
func (s *PeopleService) DeleteStaff(ctx context.Context, role policy.Role, id uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionDelete, policy.EntityStaff)
	if err != nil {
		return utils.Forbidden("no access to delete staff")
	}
	st, err := s.staffRepo.GetScoped(ctx, id, scope)
	if err != nil {
		return err
	}
	if st == nil {
		return utils.NotFound("staff member not found")
	}
	if err := s.accountRepo.DeleteStaffAccountByStaffID(ctx, id); err != nil {
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}

// ------------------------------ helpers ------------------------------

func (s *PeopleService) requireApartmentVisible(ctx context.Context, role policy.Role, apartmentID *uuid.UUID) error {
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
