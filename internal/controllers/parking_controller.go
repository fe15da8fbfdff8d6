package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

type ParkingController struct {
	service  *services.ParkingService
	resolver *policy.Resolver
}

func NewParkingController(service *services.ParkingService, resolver *policy.Resolver) *ParkingController {
	return &ParkingController{service: service, resolver: resolver}
}

// ------------------------------- zones -------------------------------

func (c *ParkingController) CreateZoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ParkingZoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateZone(r.Context(), role, services.ParkingZoneInput{
		EntranceID: req.EntranceID, Type: req.Type, Location: req.Location,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *ParkingController) GetZoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetZone(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) ListZonesHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListZones(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) UpdateZoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.ParkingZoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateZone(r.Context(), role, id, services.ParkingZoneInput{
		EntranceID: req.EntranceID, Type: req.Type, Location: req.Location,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) DeleteZoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteZone(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ------------------------------- spots -------------------------------

func (c *ParkingController) CreateSpotHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ParkingSpotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateSpot(r.Context(), role, services.ParkingSpotInput{
		ZoneID: req.ZoneID, OwnerID: req.OwnerID, Number: req.Number, Status: req.Status,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *ParkingController) GetSpotHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetSpot(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) ListSpotsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListSpots(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) ListSpotsByZoneHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	zoneID, ok := pathID(w, r, "zoneId")
	if !ok {
		return
	}
	out, err := c.service.ListSpotsByZone(r.Context(), role, zoneID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) UpdateSpotHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.ParkingSpotRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateSpot(r.Context(), role, id, services.ParkingSpotInput{
		ZoneID: req.ZoneID, OwnerID: req.OwnerID, Number: req.Number, Status: req.Status,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ParkingController) DeleteSpotHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteSpot(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
