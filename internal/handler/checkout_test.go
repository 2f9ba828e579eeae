package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/middleware"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// stubCheckoutService records which path was taken so the tests can verify
// the confirm flag routing without any infrastructure.
type stubCheckoutService struct {
	previewed  bool
	checkedOut bool
	err        error
}

func (s *stubCheckoutService) Preview(_ context.Context, _ service.WaiterIdentity, method string) (*dto.CheckoutPrompt, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.previewed = true
	return &dto.CheckoutPrompt{ConfirmationRequired: true, Prompt: "¿Cobrar 11.00€ en Efectivo/Tarjeta?", Amount: decimal.RequireFromString("11.00")}, nil
}

func (s *stubCheckoutService) Checkout(_ context.Context, _ service.WaiterIdentity, method string) (*dto.CheckoutResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.checkedOut = true
	return &dto.CheckoutResponse{Order: dto.OrderResponse{PaymentMethod: method}}, nil
}

var _ service.CheckoutService = (*stubCheckoutService)(nil)

func checkoutRequest(t *testing.T, stub *stubCheckoutService, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewCheckoutHandler(stub)
	r.POST("/v1/checkout", func(c *gin.Context) {
		c.Set(middleware.ClaimsKey, &middleware.JWTClaims{UserID: userID, Name: "Juan Pérez", Role: "waiter"})
		h.Checkout(c)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const waiterUUID = "8b7c1a52-0000-4000-8000-000000000001"

func TestCheckoutHandlerUnconfirmedReturnsPrompt(t *testing.T) {
	stub := &stubCheckoutService{}
	w := checkoutRequest(t, stub, `{"payment_method":"cash","confirm":false}`, waiterUUID)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, stub.previewed)
	assert.False(t, stub.checkedOut)
	assert.Contains(t, w.Body.String(), "confirmation_required")
}

func TestCheckoutHandlerConfirmedRunsTransaction(t *testing.T) {
	stub := &stubCheckoutService{}
	w := checkoutRequest(t, stub, `{"payment_method":"ticket_vip","confirm":true}`, waiterUUID)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, stub.checkedOut)
	assert.False(t, stub.previewed)
	assert.Contains(t, w.Body.String(), "ticket_vip")
}

func TestCheckoutHandlerRejectsUnknownMethod(t *testing.T) {
	stub := &stubCheckoutService{}
	w := checkoutRequest(t, stub, `{"payment_method":"credit_card","confirm":true}`, waiterUUID)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, stub.checkedOut)
}

func TestCheckoutHandlerEmptyCartConflict(t *testing.T) {
	stub := &stubCheckoutService{err: service.ErrEmptyCart}
	w := checkoutRequest(t, stub, `{"payment_method":"cash","confirm":true}`, waiterUUID)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCheckoutHandlerRejectsAdminSession(t *testing.T) {
	// Admin tokens carry the literal "admin" user id, not a waiter UUID
	stub := &stubCheckoutService{}
	w := checkoutRequest(t, stub, `{"payment_method":"cash","confirm":true}`, "admin")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, stub.checkedOut)
}
