// Package ui serves the HTML form interface mounted under /ui.
//
// Each entity kind has a listing page with a creation form. Submissions
// redirect back to the listing on success; on failure the listing is
// rendered again with the error and a 4xx/5xx status.
package ui

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"

	request "project_materials/internal/adapter/http/dto/request"
	response "project_materials/internal/adapter/http/dto/response"
	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const BasePath = "/ui"

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// inputError marks a form value that could not be converted.
type inputError struct{ err error }

func (e inputError) Error() string { return e.err.Error() }

type page struct {
	template string
	title    string
	path     string
	load     func(h *Handler, ctx context.Context) (any, error)
}

var (
	projectsPage = page{"projects.html", "Projects", BasePath + "/projects", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListProjects(ctx)
		return response.FromProjects(items), err
	}}
	materialsPage = page{"materials.html", "Materials", BasePath + "/materials", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListMaterials(ctx)
		return response.FromMaterials(items), err
	}}
	servicesPage = page{"services.html", "Services", BasePath + "/services", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListServices(ctx)
		return response.FromServices(items), err
	}}
	suppliersPage = page{"suppliers.html", "Suppliers", BasePath + "/suppliers", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListSuppliers(ctx)
		return response.FromSuppliers(items), err
	}}
	quotesPage = page{"quotes.html", "Quotes", BasePath + "/quotes", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListQuotes(ctx)
		return response.FromQuotes(items), err
	}}
	ordersPage = page{"orders.html", "Orders", BasePath + "/orders", func(h *Handler, ctx context.Context) (any, error) {
		items, err := h.usecase.ListOrders(ctx)
		return response.FromOrders(items), err
	}}
)

type Handler struct {
	usecase usecase.IProjectManager
	log     logrus.FieldLogger
}

func NewHandler(uc usecase.IProjectManager, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{usecase: uc, log: log}
}

func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Project materials"})
}

func (h *Handler) Projects(c *gin.Context)  { h.render(c, projectsPage, http.StatusOK, "") }
func (h *Handler) Materials(c *gin.Context) { h.render(c, materialsPage, http.StatusOK, "") }
func (h *Handler) Services(c *gin.Context)  { h.render(c, servicesPage, http.StatusOK, "") }
func (h *Handler) Suppliers(c *gin.Context) { h.render(c, suppliersPage, http.StatusOK, "") }
func (h *Handler) Quotes(c *gin.Context)    { h.render(c, quotesPage, http.StatusOK, "") }
func (h *Handler) Orders(c *gin.Context)    { h.render(c, ordersPage, http.StatusOK, "") }

func (h *Handler) CreateProject(c *gin.Context) {
	var form request.ProjectForm
	h.submit(c, projectsPage, &form, func(ctx context.Context) error {
		project, err := form.ToEntity()
		if err != nil {
			return inputError{err}
		}
		return h.usecase.AddProject(ctx, project)
	})
}

func (h *Handler) CreateMaterial(c *gin.Context) {
	var form request.MaterialForm
	h.submit(c, materialsPage, &form, func(ctx context.Context) error {
		material, err := form.ToEntity()
		if err != nil {
			return inputError{err}
		}
		return h.usecase.AddMaterial(ctx, material)
	})
}

func (h *Handler) CreateService(c *gin.Context) {
	var form request.ServiceForm
	h.submit(c, servicesPage, &form, func(ctx context.Context) error {
		service, err := form.ToEntity()
		if err != nil {
			return inputError{err}
		}
		return h.usecase.AddService(ctx, service)
	})
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var form request.SupplierForm
	h.submit(c, suppliersPage, &form, func(ctx context.Context) error {
		supplier, err := form.ToEntity()
		if err != nil {
			return inputError{err}
		}
		return h.usecase.AddSupplier(ctx, supplier)
	})
}

func (h *Handler) CreateQuote(c *gin.Context) {
	var form request.QuoteForm
	h.submit(c, quotesPage, &form, func(ctx context.Context) error {
		quote, err := form.ToEntity()
		if err != nil {
			return inputError{err}
		}
		return h.usecase.AddQuote(ctx, quote)
	})
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var form request.OrderForm
	h.submit(c, ordersPage, &form, func(ctx context.Context) error {
		quoteID, err := form.QuoteIDValue()
		if err != nil {
			return inputError{err}
		}
		_, err = h.usecase.PlaceOrder(ctx, quoteID)
		return err
	})
}

// CompleteOrder sets the final price and moves the order to completed.
func (h *Handler) CompleteOrder(c *gin.Context) {
	var form request.CompleteOrderForm
	h.submit(c, ordersPage, &form, func(ctx context.Context) error {
		orderID, price, err := form.Values()
		if err != nil {
			return inputError{err}
		}
		status := entities.OrderStatusCompleted
		_, err = h.usecase.UpdateOrder(ctx, orderID, usecase.OrderUpdate{Status: &status, FinalPrice: &price})
		return err
	})
}

func (h *Handler) submit(c *gin.Context, p page, form any, apply func(ctx context.Context) error) {
	if err := c.ShouldBind(form); err != nil {
		h.render(c, p, http.StatusBadRequest, "Please fill in every required field.")
		return
	}
	if err := apply(c.Request.Context()); err != nil {
		status, msg := describe(err)
		if status >= http.StatusInternalServerError {
			h.log.WithError(err).WithField("page", p.path).Error("[ui][handler] submission failed")
		}
		h.render(c, p, status, msg)
		return
	}
	c.Redirect(http.StatusSeeOther, p.path)
}

func (h *Handler) render(c *gin.Context, p page, status int, errMsg string) {
	items, err := p.load(h, c.Request.Context())
	if err != nil {
		h.log.WithError(err).WithField("page", p.path).Error("[ui][handler] listing failed")
		status = http.StatusInternalServerError
		errMsg = "Could not load the listing."
	}
	c.HTML(status, p.template, gin.H{
		"Title": p.title,
		"Items": items,
		"Error": errMsg,
	})
}

func describe(err error) (int, string) {
	var in inputError
	switch {
	case errors.As(err, &in):
		return http.StatusBadRequest, in.Error()
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return http.StatusNotFound, "That quote does not exist."
	case errors.Is(err, usecase.ErrOrderNotFound):
		return http.StatusNotFound, "That order does not exist."
	case errors.Is(err, usecase.ErrInvalidAmount):
		return http.StatusBadRequest, "Prices and quantities must be finite numbers."
	default:
		return http.StatusInternalServerError, "Something went wrong, please try again."
	}
}
