package handler

import (
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
)

type StockLogsHandler struct {
	inventory service.InventoryService
}

func NewStockLogsHandler(inventory service.InventoryService) *StockLogsHandler {
	return &StockLogsHandler{inventory: inventory}
}

// List godoc
// @Summary List stock movements, newest first
// @Tags stock-logs
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD"
// @Param limit query int false "max rows, default 200"
// @Success 200 {array} dto.StockLogResponse
// @Router /v1/stock-logs [get]
func (h *StockLogsHandler) List(c *gin.Context) {
	var filter dto.StockLogFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}

	logs, err := h.inventory.ListStockLogs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, logs)
}
