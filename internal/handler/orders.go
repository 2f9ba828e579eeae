package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/infra"
	"github.com/Digga-coder/POS-FRECUENZY/internal/repository"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrdersHandler struct {
	reports service.ReportService
	orders  repository.OrderRepository
}

func NewOrdersHandler(reports service.ReportService, orders repository.OrderRepository) *OrdersHandler {
	return &OrdersHandler{reports: reports, orders: orders}
}

// List godoc
// @Summary List orders, optionally filtered to one calendar day
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD"
// @Param limit query int false "max rows, default 2000"
// @Success 200 {array} dto.OrderResponse
// @Router /v1/orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	var filter dto.OrderFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}

	orders, err := h.reports.ListOrders(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Receipt godoc
// @Summary Download a printable PDF receipt for one order
// @Tags orders
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "order id"
// @Success 200 {file} binary
// @Failure 404 {object} apierror.APIError
// @Router /v1/orders/{id}/receipt [get]
func (h *OrdersHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid order id"))
		return
	}

	order, err := h.orders.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("order not found"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}

	pdf, err := infra.GenerateReceiptPDF(order)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
