package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/models"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

type StorageController struct {
	service  *services.StorageService
	resolver *policy.Resolver
}

func NewStorageController(service *services.StorageService, resolver *policy.Resolver) *StorageController {
	return &StorageController{service: service, resolver: resolver}
}

func (c *StorageController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.StorageRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.Create(r.Context(), role, services.StorageRoomInput{
		ApartmentID: req.ApartmentID, Number: req.Number, Location: req.Location,
		Status: models.StorageRoomStatus(req.Status),
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *StorageController) GetHandler(w http.ResponseWriter, r *http.Request) {
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

func (c *StorageController) ListHandler(w http.ResponseWriter, r *http.Request) {
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

func (c *StorageController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.StorageRoomRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.Update(r.Context(), role, id, services.StorageRoomInput{
		ApartmentID: req.ApartmentID, Number: req.Number, Location: req.Location,
		Status: models.StorageRoomStatus(req.Status),
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *StorageController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
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
