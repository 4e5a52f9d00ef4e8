package handlers

import (
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	usecase usecase.IProjectManager
}

func NewQuoteHandler(uc usecase.IProjectManager) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote godoc
// @Summary      Create or replace a quote
// @Description  Project, supplier, material and service ids are not checked for existence.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      200    {object}  response.QuoteResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalid(c, err)
		return
	}
	quote := payload.ToEntity()
	if err := h.usecase.AddQuote(c.Request.Context(), quote); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary  List all quotes
// @Tags     quotes
// @Produce  json
// @Success  200  {array}  response.QuoteResponse
// @Router   /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}
