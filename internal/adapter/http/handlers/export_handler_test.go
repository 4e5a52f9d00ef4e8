package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"project_materials/internal/adapter/http/handlers/mocks"
	"project_materials/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestExportHandler_ExportProjectQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	quotes := []entities.Quote{{ID: 10, ProjectID: 1, SupplierID: 1, Quantity: 2, Price: 3}}

	t.Run("csv by default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/export", NewExportHandler(uc).ExportProjectQuotes)

		uc.EXPECT().GetProjectQuotes(gomock.Any(), 1).Return(quotes, nil)

		w := serve(r, http.MethodGet, "/projects/1/quotes/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=quotes.csv" {
			t.Fatalf("unexpected disposition: %s", got)
		}
		if !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
			t.Fatalf("unexpected content type: %s", w.Header().Get("Content-Type"))
		}
		want := "id,project_id,supplier_id,material_id,service_id,quantity,price\n10,1,1,,,2,3\n"
		if w.Body.String() != want {
			t.Fatalf("expected %q, got %q", want, w.Body.String())
		}
	})

	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/export", NewExportHandler(uc).ExportProjectQuotes)

		uc.EXPECT().GetProjectQuotes(gomock.Any(), 1).Return(quotes, nil)

		w := serve(r, http.MethodGet, "/projects/1/quotes/export?format=pdf", "")
		if w.Code != http.StatusOK || !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("expected a pdf, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("unexpected content type: %s", w.Header().Get("Content-Type"))
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/export", NewExportHandler(uc).ExportProjectQuotes)

		w := serve(r, http.MethodGet, "/projects/1/quotes/export?format=docx", "")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "UNSUPPORTED_FORMAT" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestExportHandler_ExportMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectManager(ctrl)
	r := gin.New()
	r.GET("/materials/export", NewExportHandler(uc).ExportMaterials)

	uc.EXPECT().ListMaterials(gomock.Any()).Return([]entities.Material{{ID: 1, Name: "Sand", Unit: "m3"}}, nil)

	w := serve(r, http.MethodGet, "/materials/export?format=xlsx", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Disposition"); got != "attachment; filename=materials.xlsx" {
		t.Fatalf("unexpected disposition: %s", got)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatalf("expected a zip container")
	}
}
