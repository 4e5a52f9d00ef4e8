package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"project_materials/internal/infrastructure/export"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ExportHandler streams quote and material listings as file attachments.
type ExportHandler struct {
	usecase usecase.IProjectManager
}

func NewExportHandler(uc usecase.IProjectManager) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

// ExportProjectQuotes godoc
// @Summary  Export a project's quotes
// @Tags     export
// @Produce  text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id      path    int     true   "Project ID"
// @Param    format  query   string  false  "csv (default), pdf or xlsx"
// @Success  200     {file}  file
// @Failure  400     {object}  pkg.HTTPError
// @Router   /projects/{id}/quotes/export [get]
func (h *ExportHandler) ExportProjectQuotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	quotes, err := h.usecase.GetProjectQuotes(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Quotes(&buf, format, quotes); err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, format, "quotes", buf.Bytes())
}

// ExportMaterials godoc
// @Summary  Export the material catalog
// @Tags     export
// @Produce  text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    format  query   string  false  "csv (default), pdf or xlsx"
// @Success  200     {file}  file
// @Failure  400     {object}  pkg.HTTPError
// @Router   /materials/export [get]
func (h *ExportHandler) ExportMaterials(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		respondError(c, err)
		return
	}
	materials, err := h.usecase.ListMaterials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Materials(&buf, format, materials); err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, format, "materials", buf.Bytes())
}

func sendAttachment(c *gin.Context, format export.Format, base string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", format.FileName(base)))
	c.Data(http.StatusOK, format.ContentType(), body)
}
