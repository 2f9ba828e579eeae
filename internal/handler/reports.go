package handler

import (
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct {
	reports service.ReportService
}

func NewReportsHandler(reports service.ReportService) *ReportsHandler {
	return &ReportsHandler{reports: reports}
}

// Daily godoc
// @Summary Daily revenue and movement aggregates
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, defaults to today (UTC)"
// @Success 200 {object} dto.DailyReportResponse
// @Router /v1/reports/daily [get]
func (h *ReportsHandler) Daily(c *gin.Context) {
	var filter dto.DailyReportFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}

	resp, err := h.reports.Daily(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}
