package handlers

import (
	"net/http"
	"testing"

	"project_materials/internal/adapter/http/handlers/mocks"
	"project_materials/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/quotes", NewQuoteHandler(uc).CreateQuote)

		w := serve(r, http.MethodPost, "/quotes", `{"id":10,"project_id":1,"supplier_id":1,"quantity":2}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/quotes", NewQuoteHandler(uc).CreateQuote)

		mat := 5
		uc.EXPECT().AddQuote(gomock.Any(), entities.Quote{ID: 10, ProjectID: 1, SupplierID: 1, MaterialID: &mat, Quantity: 2, Price: 3}).Return(nil)

		w := serve(r, http.MethodPost, "/quotes", `{"id":10,"project_id":1,"supplier_id":1,"material_id":5,"quantity":2,"price":3.0}`)
		want := `{"id":10,"project_id":1,"supplier_id":1,"material_id":5,"service_id":null,"quantity":2,"price":3}`
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectManager(ctrl)
	r := gin.New()
	r.GET("/quotes", NewQuoteHandler(uc).ListQuotes)

	uc.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{{ID: 1}, {ID: 2}}, nil)

	w := serve(r, http.MethodGet, "/quotes", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
