package handler

import (
	"net/http"

	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	catalog service.CatalogService
}

func NewCategoriesHandler(catalog service.CatalogService) *CategoriesHandler {
	return &CategoriesHandler{catalog: catalog}
}

// List godoc
// @Summary List catalog categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryResponse
// @Router /v1/categories [get]
func (h *CategoriesHandler) List(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, categories)
}
