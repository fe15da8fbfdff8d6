package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

// PeopleController serves owners, residents and staff.
type PeopleController struct {
	service  *services.PeopleService
	resolver *policy.Resolver
}

func NewPeopleController(service *services.PeopleService, resolver *policy.Resolver) *PeopleController {
	return &PeopleController{service: service, resolver: resolver}
}

// ------------------------------ owners -------------------------------

func (c *PeopleController) CreateOwnerHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.OwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateOwner(r.Context(), role, services.OwnerInput{Name: req.Name, Phone: req.Phone})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *PeopleController) GetOwnerHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetOwner(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) ListOwnersHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListOwners(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) ListOwnerApartmentsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.ListOwnerApartments(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) UpdateOwnerHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.OwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateOwner(r.Context(), role, id, services.OwnerInput{Name: req.Name, Phone: req.Phone})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// DeleteOwnerHandler honors ?unlink=true to detach the owner's
// apartments before the delete.
func (c *PeopleController) DeleteOwnerHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	unlink := r.URL.Query().Get("unlink") == "true"
	if err := c.service.DeleteOwner(r.Context(), role, id, unlink); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- residents -----------------------------

func (c *PeopleController) CreateResidentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ResidentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateResident(r.Context(), role, services.ResidentInput{
		ApartmentID: req.ApartmentID, FullName: req.FullName, Contact: req.Contact, Role: req.Role,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *PeopleController) GetResidentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetResident(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) ListResidentsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListResidents(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) UpdateResidentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.ResidentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateResident(r.Context(), role, id, services.ResidentInput{
		ApartmentID: req.ApartmentID, FullName: req.FullName, Contact: req.Contact, Role: req.Role,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) DeleteResidentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteResident(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- staff -------------------------------

func (c *PeopleController) CreateStaffHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.StaffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateStaff(r.Context(), role, services.StaffInput{
		ComplexID: req.ComplexID, FullName: req.FullName,
		Contact: req.Contact, Role: req.Role, WorkSchedule: req.WorkSchedule,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *PeopleController) GetStaffHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetStaff(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) ListStaffHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListStaff(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) UpdateStaffHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.StaffRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateStaff(r.Context(), role, id, services.StaffInput{
		ComplexID: req.ComplexID, FullName: req.FullName,
		Contact: req.Contact, Role: req.Role, WorkSchedule: req.WorkSchedule,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *PeopleController) DeleteStaffHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteStaff(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
