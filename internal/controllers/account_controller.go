package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

// AccountController serves login-account management.
type AccountController struct {
	service  *services.AccountService
	resolver *policy.Resolver
}

func NewAccountController(service *services.AccountService, resolver *policy.Resolver) *AccountController {
	return &AccountController{service: service, resolver: resolver}
}

func credentials(req dtos.AccountRequest) services.CredentialsInput {
	return services.CredentialsInput{Username: req.Username, Email: req.Email, Password: req.Password}
}

// -------------------------- complex admins ---------------------------

func (c *AccountController) CreateComplexAdminHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ComplexAdminAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateComplexAdmin(r.Context(), role, credentials(req.AccountRequest), req.ComplexID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *AccountController) ListComplexAdminsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListComplexAdmins(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *AccountController) DeleteComplexAdminHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteComplexAdmin(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------- owner accounts --------------------------

func (c *AccountController) CreateOwnerAccountHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.OwnerAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateOwnerAccount(r.Context(), role, credentials(req.AccountRequest), req.OwnerID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *AccountController) ListOwnerAccountCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListOwnerAccountCandidates(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *AccountController) ListOwnerAccountsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	complexID, ok := pathID(w, r, "complexId")
	if !ok {
		return
	}
	out, err := c.service.ListOwnerAccounts(r.Context(), role, complexID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *AccountController) DeleteOwnerAccountHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	ownerID, ok := pathID(w, r, "ownerId")
	if !ok {
		return
	}
	if err := c.service.DeleteOwnerAccount(r.Context(), role, ownerID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------------------------- staff accounts --------------------------

func (c *AccountController) CreateStaffAccountHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.StaffAccountRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateStaffAccount(
		r.Context(), role, credentials(req.AccountRequest),
		req.StaffID, models.StaffAccessType(req.AccessType),
	)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *AccountController) ListStaffAccountCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListStaffAccountCandidates(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *AccountController) ListStaffAccountsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	complexID, ok := pathID(w, r, "complexId")
	if !ok {
		return
	}
	out, err := c.service.ListStaffAccounts(r.Context(), role, complexID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *AccountController) DeleteStaffAccountHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	staffID, ok := pathID(w, r, "staffId")
	if !ok {
		return
	}
	if err := c.service.DeleteStaffAccount(r.Context(), role, staffID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------- self-service ---------------------------

func (c *AccountController) UpdateMyEmailHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.UpdateEmailRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := c.service.UpdateMyEmail(r.Context(), role, req.Email); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
