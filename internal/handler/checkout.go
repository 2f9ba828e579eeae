package handler

import (
	"errors"
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/middleware"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
}

func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout godoc
// @Summary Charge the current cart
// @Description With confirm=false the server returns the method-specific
// @Description confirmation prompt and performs no side effects. Re-submit with
// @Description confirm=true to run the transaction.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckoutRequest true "payment method and confirmation"
// @Success 200 {object} dto.CheckoutPrompt "confirmation pending"
// @Success 201 {object} dto.CheckoutResponse "order recorded"
// @Failure 409 {object} apierror.APIError "empty cart"
// @Router /v1/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	waiterID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("checkout requires a waiter session"))
		return
	}
	waiter := service.WaiterIdentity{ID: waiterID, Name: claims.Name}

	if !req.Confirm {
		prompt, err := h.checkout.Preview(c.Request.Context(), waiter, req.PaymentMethod)
		if err != nil {
			if errors.Is(err, service.ErrEmptyCart) {
				c.JSON(http.StatusConflict, apierror.New("cart is empty"))
				return
			}
			c.Error(err) //nolint:errcheck
			return
		}
		c.JSON(http.StatusOK, prompt)
		return
	}

	resp, err := h.checkout.Checkout(c.Request.Context(), waiter, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			c.JSON(http.StatusConflict, apierror.New("cart is empty"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, resp)
}
