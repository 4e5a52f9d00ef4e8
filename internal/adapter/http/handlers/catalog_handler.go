package handlers

import (
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves materials, services and suppliers.
type CatalogHandler struct {
	usecase usecase.IProjectManager
}

func NewCatalogHandler(uc usecase.IProjectManager) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateMaterial godoc
// @Summary  Create or replace a material
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    material  body      request.MaterialRequest  true  "Material"
// @Success  200       {object}  response.MaterialResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /materials [post]
func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	material := payload.ToEntity()
	if err := h.usecase.AddMaterial(c.Request.Context(), material); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(material))
}

// ListMaterials godoc
// @Summary  List materials
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.MaterialResponse
// @Router   /materials [get]
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// CreateService godoc
// @Summary  Create or replace a service
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    service  body      request.ServiceRequest  true  "Service"
// @Success  200      {object}  response.ServiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	service := payload.ToEntity()
	if err := h.usecase.AddService(c.Request.Context(), service); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

// ListServices godoc
// @Summary  List services
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.ServiceResponse
// @Router   /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// CreateSupplier godoc
// @Summary  Create or replace a supplier
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    supplier  body      request.SupplierRequest  true  "Supplier"
// @Success  200       {object}  response.SupplierResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var payload request.SupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	supplier := payload.ToEntity()
	if err := h.usecase.AddSupplier(c.Request.Context(), supplier); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(supplier))
}

// ListSuppliers godoc
// @Summary  List suppliers
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.SupplierResponse
// @Router   /suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.usecase.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(suppliers))
}
