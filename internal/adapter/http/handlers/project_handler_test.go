package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"project_materials/internal/adapter/http/handlers/mocks"
	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase"
	"project_materials/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) pkg.HTTPError {
	t.Helper()
	var body pkg.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects", NewProjectHandler(uc).CreateProject)

		w := serve(r, http.MethodPost, "/projects", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeError(t, w).Code != "INVALID_REQUEST" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects", NewProjectHandler(uc).CreateProject)

		w := serve(r, http.MethodPost, "/projects", `{"id":1}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if msg := decodeError(t, w).Message; msg != "Invalid request: Name failed required" {
			t.Fatalf("unexpected message %q", msg)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects", NewProjectHandler(uc).CreateProject)

		w := serve(r, http.MethodPost, "/projects", `{"id":1,"name":"House","start_date":"tomorrow"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with id zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects", NewProjectHandler(uc).CreateProject)

		uc.EXPECT().AddProject(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) error {
				if p.ID != 0 || p.Name != "House" || p.StartDate == nil {
					t.Fatalf("unexpected project: %+v", p)
				}
				return nil
			},
		)

		w := serve(r, http.MethodPost, "/projects", `{"id":0,"name":"House","start_date":"2024-05-01"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		want := `{"id":0,"name":"House","address":null,"start_date":"2024-05-01","end_date":null}`
		if w.Body.String() != want {
			t.Fatalf("expected %s, got %s", want, w.Body.String())
		}
	})

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects", NewProjectHandler(uc).CreateProject)

		uc.EXPECT().AddProject(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		w := serve(r, http.MethodPost, "/projects", `{"id":1,"name":"House"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if decodeError(t, w).Code != "INTERNAL_ERROR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_QuotesAndTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/total", NewProjectHandler(uc).GetProjectTotal)

		w := serve(r, http.MethodGet, "/projects/abc/total", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/total", NewProjectHandler(uc).GetProjectTotal)

		uc.EXPECT().GetProjectTotal(gomock.Any(), 1).Return(6.0, nil)

		w := serve(r, http.MethodGet, "/projects/1/total", "")
		if w.Code != http.StatusOK || w.Body.String() != `{"total":6}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("quotes empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes", NewProjectHandler(uc).ListProjectQuotes)

		uc.EXPECT().GetProjectQuotes(gomock.Any(), 9).Return([]entities.Quote{}, nil)

		w := serve(r, http.MethodGet, "/projects/9/quotes", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestProjectHandler_GenerateOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects/:id/orders", NewProjectHandler(uc).GenerateOrders)

		uc.EXPECT().GenerateOrders(gomock.Any(), 1).Return([]entities.Order{
			{ID: 1, QuoteID: 10, Status: entities.OrderStatusOrdered},
		}, nil)

		w := serve(r, http.MethodPost, "/projects/1/orders", "")
		want := `[{"id":1,"quote_id":10,"status":"ordered","final_price":null}]`
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid reference propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.POST("/projects/:id/orders", NewProjectHandler(uc).GenerateOrders)

		uc.EXPECT().GenerateOrders(gomock.Any(), 1).Return(nil, usecase.ErrQuoteNotFound)

		w := serve(r, http.MethodPost, "/projects/1/orders", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProjectHandler_GetBestQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/best", NewProjectHandler(uc).GetBestQuote)

		mat := 5
		uc.EXPECT().BestQuote(gomock.Any(), 1, &mat, (*int)(nil)).Return(entities.Quote{ID: 2, ProjectID: 1, MaterialID: &mat, Price: 3}, true, nil)

		w := serve(r, http.MethodGet, "/projects/1/quotes/best?material_id=5", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/best", NewProjectHandler(uc).GetBestQuote)

		uc.EXPECT().BestQuote(gomock.Any(), 1, gomock.Nil(), gomock.Nil()).Return(entities.Quote{}, false, nil)

		w := serve(r, http.MethodGet, "/projects/1/quotes/best", "")
		if w.Code != http.StatusNotFound || decodeError(t, w).Code != "QUOTE_NOT_FOUND" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("bad material id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectManager(ctrl)
		r := gin.New()
		r.GET("/projects/:id/quotes/best", NewProjectHandler(uc).GetBestQuote)

		w := serve(r, http.MethodGet, "/projects/1/quotes/best?material_id=x", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
