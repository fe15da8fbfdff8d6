package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

type MaintenanceController struct {
	service  *services.MaintenanceService
	resolver *policy.Resolver
}

func NewMaintenanceController(service *services.MaintenanceService, resolver *policy.Resolver) *MaintenanceController {
	return &MaintenanceController{service: service, resolver: resolver}
}

func (c *MaintenanceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.TicketRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.Create(r.Context(), role, services.TicketInput{
		ApartmentID: req.ApartmentID, Description: req.Description,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *MaintenanceController) GetHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.Get(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *MaintenanceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.List(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// TakeHandler moves a new ticket into in_progress.
func (c *MaintenanceController) TakeHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.Take(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// DoneHandler finishes an in-progress ticket.
func (c *MaintenanceController) DoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.MarkDone(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *MaintenanceController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.Delete(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
