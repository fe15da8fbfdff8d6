package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/policy"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

// ComplexController serves the building-stock endpoints.
type ComplexController struct {
	service  *services.ComplexService
	resolver *policy.Resolver
}

func NewComplexController(service *services.ComplexService, resolver *policy.Resolver) *ComplexController {
	return &ComplexController{service: service, resolver: resolver}
}

// ----------------------------- complexes -----------------------------

func (c *ComplexController) CreateComplexHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ComplexRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.service.CreateComplex(r.Context(), role, services.ComplexInput{
		Name: req.Name, Address: req.Address, Management: req.Management, Contact: req.Contact,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

func (c *ComplexController) GetComplexHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetComplex(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

// ListComplexesHandler supports ?q= for name/address search.
func (c *ComplexController) ListComplexesHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListComplexes(r.Context(), role, r.URL.Query().Get("q"))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) UpdateComplexHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.ComplexRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateComplex(r.Context(), role, id, services.ComplexInput{
		Name: req.Name, Address: req.Address, Management: req.Management, Contact: req.Contact,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) DeleteComplexHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteComplex(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- buildings -----------------------------

func (c *ComplexController) CreateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.BuildingRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateBuilding(r.Context(), role, services.BuildingInput{
		ComplexID: req.ComplexID, Number: req.Number, Floors: req.Floors,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *ComplexController) GetBuildingHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetBuilding(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) ListBuildingsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	complexID, ok := pathID(w, r, "complexId")
	if !ok {
		return
	}
	out, err := c.service.ListBuildings(r.Context(), role, complexID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) UpdateBuildingHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.BuildingUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateBuilding(r.Context(), role, id, req.Number, req.Floors)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) DeleteBuildingHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteBuilding(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- entrances -----------------------------

func (c *ComplexController) CreateEntranceHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.EntranceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateEntrance(r.Context(), role, services.EntranceInput{
		BuildingID: req.BuildingID, Number: req.Number,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *ComplexController) GetEntranceHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetEntrance(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) ListEntrancesHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	buildingID, ok := pathID(w, r, "buildingId")
	if !ok {
		return
	}
	out, err := c.service.ListEntrances(r.Context(), role, buildingID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) UpdateEntranceHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.EntranceUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateEntrance(r.Context(), role, id, req.Number)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) DeleteEntranceHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteEntrance(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------- apartments ----------------------------

func (c *ComplexController) CreateApartmentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	var req dtos.ApartmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.CreateApartment(r.Context(), role, services.ApartmentInput{
		EntranceID: req.EntranceID, OwnerID: req.OwnerID,
		Number: req.Number, Floor: req.Floor, Rooms: req.Rooms, AreaM2: req.AreaM2,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, out)
}

func (c *ComplexController) GetApartmentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	out, err := c.service.GetApartment(r.Context(), role, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) ListApartmentsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	out, err := c.service.ListApartments(r.Context(), role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) ListApartmentsByEntranceHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	entranceID, ok := pathID(w, r, "entranceId")
	if !ok {
		return
	}
	out, err := c.service.ListApartmentsByEntrance(r.Context(), role, entranceID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) UpdateApartmentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req dtos.ApartmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	out, err := c.service.UpdateApartment(r.Context(), role, id, services.ApartmentInput{
		EntranceID: req.EntranceID, OwnerID: req.OwnerID,
		Number: req.Number, Floor: req.Floor, Rooms: req.Rooms, AreaM2: req.AreaM2,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, out)
}

func (c *ComplexController) DeleteApartmentHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := resolveRole(w, r, c.resolver)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteApartment(r.Context(), role, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
