package handler

import (
	"errors"
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Waiter login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdminLogin godoc
// @Summary Admin passphrase login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "passphrase"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.auth.AdminLogin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}

	c.JSON(http.StatusOK, resp)
}
