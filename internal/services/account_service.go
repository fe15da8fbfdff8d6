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

// AccountService provisions and revokes login accounts. A complex admin
// manages owner and staff accounts inside their complex; complex admin
// accounts themselves are the platform administrator's business.
type AccountService struct {
	accountRepo repositories.AccountRepository
	complexRepo repositories.ComplexRepository
	ownerRepo   repositories.OwnerRepository
	staffRepo   repositories.StaffRepository
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	complexRepo repositories.ComplexRepository,
	ownerRepo repositories.OwnerRepository,
	staffRepo repositories.StaffRepository,
) *AccountService {
	return &AccountService{accountRepo, complexRepo, ownerRepo, staffRepo}
}

type CredentialsInput struct {
	Username string
	Email    string
	Password string
}

func (s *AccountService) newUser(in CredentialsInput) (*models.User, error) {
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	}, nil
}

// -------------------------- complex admins ---------------------------

func (s *AccountService) CreateComplexAdmin(ctx context.Context, role policy.Role, in CredentialsInput, complexID uuid.UUID) (*models.ComplexAdminProfile, error) {
	if role.Kind != policy.RoleSuperadmin {
		return nil, utils.Forbidden("only the platform administrator can appoint complex admins")
	}
	c, err := s.complexRepo.GetScoped(ctx, complexID, policy.Unrestricted())
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, utils.NotFound("complex not found")
	}

	user, err := s.newUser(in)
	if err != nil {
		return nil, err
	}
	profile, err := s.accountRepo.CreateComplexAdmin(ctx, user, complexID)
	if err != nil {
		return nil, accountCreateError(err)
	}
	return profile, nil
}

func (s *AccountService) ListComplexAdmins(ctx context.Context, role policy.Role) ([]*models.ComplexAdminProfile, error) {
	if role.Kind != policy.RoleSuperadmin {
		return nil, utils.Forbidden("only the platform administrator can list complex admins")
	}
	return s.accountRepo.ListComplexAdmins(ctx)
}

// DeleteComplexAdmin revokes the appointment; the underlying user goes
// with it unless another profile or the superuser flag keeps it alive.
func (s *AccountService) DeleteComplexAdmin(ctx context.Context, role policy.Role, id uuid.UUID) error {
	if role.Kind != policy.RoleSuperadmin {
		return utils.Forbidden("only the platform administrator can revoke complex admins")
	}
	profile, err := s.accountRepo.GetComplexAdminByID(ctx, id)
	if err != nil {
		return err
	}
	if profile == nil {
		return utils.NotFound("complex admin not found")
	}
	return s.accountRepo.DeleteComplexAdmin(ctx, id)
}

// --------------------------- owner accounts --------------------------

func (s *AccountService) CreateOwnerAccount(ctx context.Context, role policy.Role, in CredentialsInput, ownerID uuid.UUID) (*models.OwnerAccount, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityOwner)
	if err != nil {
		return nil, utils.Forbidden("no access to manage owner accounts")
	}
	// The owner must already be in the caller's scope, meaning they hold
	// an apartment there.
	o, err := s.ownerRepo.GetScoped(ctx, ownerID, scope)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, utils.NotFound("owner not found")
	}

	user, err := s.newUser(in)
	if err != nil {
		return nil, err
	}
	acct, err := s.accountRepo.CreateOwnerAccount(ctx, user, ownerID)
	if err != nil {
		return nil, accountCreateError(err)
	}
	return acct, nil
}

// ListOwnerAccountCandidates returns in-scope owners that have no login
// account yet.
func (s *AccountService) ListOwnerAccountCandidates(ctx context.Context, role policy.Role) ([]*models.Owner, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityOwner)
	if err != nil {
		return nil, utils.Forbidden("no access to manage owner accounts")
	}
	return s.ownerRepo.ListUnaccounted(ctx, scope)
}

func (s *AccountService) ListOwnerAccounts(ctx context.Context, role policy.Role, complexID uuid.UUID) ([]*models.OwnerAccount, error) {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityOwner); err != nil {
		return nil, utils.Forbidden("no access to owner accounts")
	}
	if role.Kind == policy.RoleComplexAdmin {
		complexID = role.ComplexID
	}
	return s.accountRepo.ListOwnerAccountsByComplex(ctx, complexID)
}

func (s *AccountService) DeleteOwnerAccount(ctx context.Context, role policy.Role, ownerID uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityOwner)
	if err != nil {
		return utils.Forbidden("no access to manage owner accounts")
	}
	o, err := s.ownerRepo.GetScoped(ctx, ownerID, scope)
	if err != nil {
		return err
	}
	if o == nil {
		return utils.NotFound("owner not found")
	}
	return s.accountRepo.DeleteOwnerAccountByOwnerID(ctx, ownerID)
}

// --------------------------- staff accounts --------------------------

func (s *AccountService) CreateStaffAccount(ctx context.Context, role policy.Role, in CredentialsInput, staffID uuid.UUID, access models.StaffAccessType) (*models.StaffAccount, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityStaff)
	if err != nil {
		return nil, utils.Forbidden("no access to manage staff accounts")
	}
	if access != models.AccessGuard && access != models.AccessMaintenance {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadRequest,
			Code:       utils.ErrCodeValidation,
			Message:    "access type must be guard or maintenance",
		}
	}
	st, err := s.staffRepo.GetScoped(ctx, staffID, scope)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, utils.NotFound("staff member not found")
	}

	user, err := s.newUser(in)
	if err != nil {
		return nil, err
	}
	acct, err := s.accountRepo.CreateStaffAccount(ctx, user, staffID, access)
	if err != nil {
		return nil, accountCreateError(err)
	}
	return acct, nil
}

func (s *AccountService) ListStaffAccountCandidates(ctx context.Context, role policy.Role) ([]*models.Staff, error) {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityStaff)
	if err != nil {
		return nil, utils.Forbidden("no access to manage staff accounts")
	}
	return s.staffRepo.ListUnaccounted(ctx, scope)
}

func (s *AccountService) ListStaffAccounts(ctx context.Context, role policy.Role, complexID uuid.UUID) ([]*models.StaffAccount, error) {
	if _, err := policy.Authorize(role, policy.ActionView, policy.EntityStaff); err != nil {
		return nil, utils.Forbidden("no access to staff accounts")
	}
	if role.Kind == policy.RoleComplexAdmin {
		complexID = role.ComplexID
	}
	return s.accountRepo.ListStaffAccountsByComplex(ctx, complexID)
}

func (s *AccountService) DeleteStaffAccount(ctx context.Context, role policy.Role, staffID uuid.UUID) error {
	scope, err := policy.Authorize(role, policy.ActionEdit, policy.EntityStaff)
	if err != nil {
		return utils.Forbidden("no access to manage staff accounts")
	}
	st, err := s.staffRepo.GetScoped(ctx, staffID, scope)
	if err != nil {
		return err
	}
	if st == nil {
		return utils.NotFound("staff member not found")
	}
	return s.accountRepo.DeleteStaffAccountByStaffID(ctx, staffID)
}

// ---------------------------- self-service ---------------------------

func (s *AccountService) UpdateMyEmail(ctx context.Context, role policy.Role, email string) error {
	if role.Kind == policy.RoleUnaffiliated {
		return utils.Forbidden("no active account")
	}
	return s.accountRepo.UpdateUserEmail(ctx, role.UserID, email)
}

// ------------------------------ helpers ------------------------------

func accountCreateError(err error) error {
	switch {
	case errors.Is(err, utils.ErrUsernameExists):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "username already taken",
			Err:        err,
		}
	case errors.Is(err, utils.ErrAccountExists):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "an account already exists for this person",
			Err:        err,
		}
	default:
		return err
	}
}
