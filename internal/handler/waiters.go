package handler

import (
	"errors"
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WaitersHandler struct {
	staff service.StaffService
}

func NewWaitersHandler(staff service.StaffService) *WaitersHandler {
	return &WaitersHandler{staff: staff}
}

// List godoc
// @Summary List all waiters
// @Tags waiters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.WaiterResponse
// @Router /v1/waiters [get]
func (h *WaitersHandler) List(c *gin.Context) {
	waiters, err := h.staff.ListWaiters(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, waiters)
}

// Create godoc
// @Summary Create a waiter account
// @Tags waiters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateWaiterRequest true "waiter"
// @Success 201 {object} dto.WaiterResponse
// @Router /v1/waiters [post]
func (h *WaitersHandler) Create(c *gin.Context) {
	var req dto.CreateWaiterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.staff.CreateWaiter(c.Request.Context(), req)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Toggle godoc
// @Summary Activate or deactivate a waiter
// @Tags waiters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "waiter id"
// @Param request body dto.ToggleWaiterRequest true "active flag"
// @Success 200 {object} dto.WaiterResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/waiters/{id}/active [patch]
func (h *WaitersHandler) Toggle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid waiter id"))
		return
	}

	var req dto.ToggleWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("malformed request body"))
		return
	}

	resp, err := h.staff.ToggleActive(c.Request.Context(), id, req.Active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("waiter not found"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a waiter account
// @Tags waiters
// @Security BearerAuth
// @Param id path string true "waiter id"
// @Success 204
// @Router /v1/waiters/{id} [delete]
func (h *WaitersHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid waiter id"))
		return
	}

	if err := h.staff.DeleteWaiter(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.Status(http.StatusNoContent)
}
