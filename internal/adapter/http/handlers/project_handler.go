package handlers

import (
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves projects and the per-project quote views.

type ProjectHandler struct {
	usecase usecase.IProjectManager
}

func NewProjectHandler(uc usecase.IProjectManager) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// CreateProject godoc
// @Summary      Create or replace a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      request.ProjectRequest  true  "Project"
// @Success      200      {object}  response.ProjectResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	project, err := payload.ToEntity()
	if err != nil {
		respondInvalid(c, err)
		return
	}
	if err := h.usecase.AddProject(c.Request.Context(), project); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// ListProjects godoc
// @Summary  List projects
// @Tags     projects
// @Produce  json
// @Success  200  {array}  response.ProjectResponse
// @Router   /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.usecase.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// ListProjectQuotes godoc
// @Summary  Quotes of a project
// @Tags     projects
// @Produce  json
// @Param    id   path     int  true  "Project ID"
// @Success  200  {array}  response.QuoteResponse
// @Router   /projects/{id}/quotes [get]
func (h *ProjectHandler) ListProjectQuotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quotes, err := h.usecase.GetProjectQuotes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetProjectTotal godoc
// @Summary  Sum of price * quantity over a project's quotes
// @Tags     projects
// @Produce  json
// @Param    id   path      int  true  "Project ID"
// @Success  200  {object}  response.TotalResponse
// @Router   /projects/{id}/total [get]
func (h *ProjectHandler) GetProjectTotal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	total, err := h.usecase.GetProjectTotal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TotalResponse{Total: total})
}

// GenerateOrders godoc
// @Summary  Place one order per project quote
// @Tags     projects
// @Produce  json
// @Param    id   path     int  true  "Project ID"
// @Success  200  {array}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /projects/{id}/orders [post]
func (h *ProjectHandler) GenerateOrders(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	orders, err := h.usecase.GenerateOrders(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetBestQuote godoc
// @Summary  Cheapest project quote for a material/service pair
// @Tags     projects
// @Produce  json
// @Param    id           path      int  true   "Project ID"
// @Param    material_id  query     int  false  "Material ID"
// @Param    service_id   query     int  false  "Service ID"
// @Success  200          {object}  response.QuoteResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /projects/{id}/quotes/best [get]
func (h *ProjectHandler) GetBestQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var query request.BestQuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, err)
		return
	}
	materialID, serviceID, err := query.Refs()
	if err != nil {
		respondInvalid(c, err)
		return
	}

	quote, found, err := h.usecase.BestQuote(c.Request.Context(), id, materialID, serviceID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !found {
		c.JSON(errNoBestQuote.HTTPStatus, errNoBestQuote.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}
