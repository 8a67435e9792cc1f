package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartclinic/clinic-api/internal/api/metrics"
	"github.com/smartclinic/clinic-api/internal/core/domain"
	"github.com/smartclinic/clinic-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AdminService
}

func NewAuthHandler(authService ports.AdminService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an administrator and returns a session token.
//
// @Summary      Administrator login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      adminLoginRequest  true  "Login credentials"
// @Success      200   {object}  adminLoginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, admin, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	observeLogin(domain.RoleAdmin, err)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminLoginResponse{Token: token, Admin: admin})
}

func observeLogin(role domain.Role, err error) {
	result := "success"
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		result = "invalid_credentials"
	case err != nil:
		result = "error"
	}
	metrics.LoginAttemptsTotal.WithLabelValues(role.String(), result).Inc()
}
