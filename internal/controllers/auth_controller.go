package controllers

import (
	"net/http"

	"github.com/osbbhub/complex-service/internal/dtos"
	"github.com/osbbhub/complex-service/internal/services"
	"github.com/osbbhub/complex-service/internal/utils"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// LoginHandler is the only unauthenticated endpoint besides health.
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}
