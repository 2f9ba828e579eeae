package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Digga-coder/POS-FRECUENZY/internal/apierror"
	"github.com/Digga-coder/POS-FRECUENZY/internal/dto"
	"github.com/Digga-coder/POS-FRECUENZY/internal/middleware"
	"github.com/Digga-coder/POS-FRECUENZY/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductsHandler struct {
	catalog   service.CatalogService
	inventory service.InventoryService
}

func NewProductsHandler(catalog service.CatalogService, inventory service.InventoryService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog, inventory: inventory}
}

// List godoc
// @Summary List sellable products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Router /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, products)
}

// ListMixers godoc
// @Summary List mixer products for the pairing step
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProductResponse
// @Router /v1/products/mixers [get]
func (h *ProductsHandler) ListMixers(c *gin.Context) {
	mixers, err := h.catalog.ListMixers(c.Request.Context())
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, mixers)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "product"
// @Success 201 {object} dto.ProductResponse
// @Router /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.GetClaims(c).Name
	resp, err := h.inventory.CreateProduct(c.Request.Context(), req, actor)
	if err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary Update a product (full field set)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "product id"
// @Param request body dto.UpdateProductRequest true "product"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/products/{id} [put]
func (h *ProductsHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}

	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}

	actor := middleware.GetClaims(c).Name
	resp, err := h.inventory.UpdateProduct(c.Request.Context(), id, req, actor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("product not found"))
			return
		}
		c.Error(err) //nolint:errcheck
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Security BearerAuth
// @Param id path int true "product id"
// @Success 204
// @Router /v1/products/{id} [delete]
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}

	if err := h.inventory.DeleteProduct(c.Request.Context(), id); err != nil {
		c.Error(err) //nolint:errcheck
		return
	}
	c.Status(http.StatusNoContent)
}
