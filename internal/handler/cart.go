package handler

import (
	"errors"
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/middleware"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartHandler exposes the caller's server-side cart. Every route operates on
// the cart keyed by the authenticated waiter, never on an id from the URL.
type CartHandler struct {
	carts service.CartService
}

func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get godoc
// @Summary Get the current cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	resp, err := h.carts.Get(c.Request.Context(), middleware.GetClaims(c).UserID)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddItem godoc
// @Summary Add a product (optionally paired with a mixer) to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCartItemRequest true "line"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.carts.AddItem(c.Request.Context(), middleware.GetClaims(c).UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
		case errors.Is(err, service.ErrOutOfStock):
			c.JSON(http.StatusConflict, apierror.New("out of stock"))
		case errors.Is(err, service.ErrMixerRequired):
			c.JSON(http.StatusConflict, apierror.New("product requires a mixer"))
		case errors.Is(err, service.ErrNotAMixer):
			c.JSON(http.StatusConflict, apierror.New("selected product is not a mixer"))
		default:
			c.Error(err) //nolint:errcheck
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RemoveItem godoc
// @Summary Remove one cart line by its unique id
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param uniqueId path string true "cart line unique id"
// @Success 200 {object} dto.CartResponse
// @Router /v1/cart/items/{uniqueId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	resp, err := h.carts.RemoveItem(c.Request.Context(), middleware.GetClaims(c).UserID, c.Param("uniqueId"))
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Clear godoc
// @Summary Empty the cart
// @Tags cart
// @Security BearerAuth
// @Success 204
// @Router /v1/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), middleware.GetClaims(c).UserID); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.Status(http.StatusNoContent)
}
