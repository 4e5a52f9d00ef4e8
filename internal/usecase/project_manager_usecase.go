package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase/interfaces"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=project_manager_usecase.go -destination=../adapter/http/handlers/mocks/project_manager_mock.go -package=mocks

var (
	// ErrInvalidReference is returned when an operation is given an id that
	// was never stored.
	ErrInvalidReference = errors.New("invalid reference")
	ErrQuoteNotFound    = fmt.Errorf("%w: quote does not exist", ErrInvalidReference)
	ErrOrderNotFound    = fmt.Errorf("%w: order does not exist", ErrInvalidReference)

	// ErrInvalidAmount rejects NaN and infinite prices or quantities.
	ErrInvalidAmount = errors.New("amount must be a finite number")
)

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// OrderUpdate carries the optional fields of an order update. Nil fields are
// left untouched.
type OrderUpdate struct {
	Status     *entities.OrderStatus
	FinalPrice *float64
}

// IProjectManager is the bookkeeping core: entity storage plus order
// placement, order updates, project totals and cheapest-quote selection.

type IProjectManager interface {
	AddProject(ctx context.Context, project entities.Project) error
	AddMaterial(ctx context.Context, material entities.Material) error
	AddService(ctx context.Context, service entities.Service) error
	AddSupplier(ctx context.Context, supplier entities.Supplier) error
	AddQuote(ctx context.Context, quote entities.Quote) error

	ListProjects(ctx context.Context) ([]entities.Project, error)
	ListMaterials(ctx context.Context) ([]entities.Material, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListSuppliers(ctx context.Context) ([]entities.Supplier, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)

	PlaceOrder(ctx context.Context, quoteID int) (entities.Order, error)
	GenerateOrders(ctx context.Context, projectID int) ([]entities.Order, error)
	UpdateOrder(ctx context.Context, orderID int, upd OrderUpdate) (entities.Order, error)

	GetProjectQuotes(ctx context.Context, projectID int) ([]entities.Quote, error)
	GetProjectTotal(ctx context.Context, projectID int) (float64, error)
	BestQuote(ctx context.Context, projectID int, materialID, serviceID *int) (entities.Quote, bool, error)
}

// Repositories groups the stores owned by a ProjectManager.
type Repositories struct {
	Projects  interfaces.IProjectRepository
	Materials interfaces.IMaterialRepository
	Services  interfaces.IServiceRepository
	Suppliers interfaces.ISupplierRepository
	Quotes    interfaces.IQuoteRepository
	Orders    interfaces.IOrderRepository
}

// OrderRecorder receives order events, typically to feed metrics.
type OrderRecorder interface {
	OrderPlaced()
	OrderUpdated(status entities.OrderStatus)
}

type ProjectManager struct {
	repos    Repositories
	log      logrus.FieldLogger
	recorder OrderRecorder

	// mu serialises quote writes and every operation that allocates order
	// ids or writes prices back onto quotes.
	mu sync.Mutex
}

var _ IProjectManager = (*ProjectManager)(nil)

func NewProjectManager(repos Repositories, log logrus.FieldLogger, recorder OrderRecorder) *ProjectManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProjectManager{repos: repos, log: log, recorder: recorder}
}

func (u *ProjectManager) AddProject(ctx context.Context, project entities.Project) error {
	u.log.WithField("project_id", project.ID).Debug("[project][usecase] add")
	return u.repos.Projects.Save(ctx, project)
}

func (u *ProjectManager) AddMaterial(ctx context.Context, material entities.Material) error {
	u.log.WithField("material_id", material.ID).Debug("[material][usecase] add")
	return u.repos.Materials.Save(ctx, material)
}

func (u *ProjectManager) AddService(ctx context.Context, service entities.Service) error {
	if !finite(service.UnitPrice) {
		return ErrInvalidAmount
	}
	u.log.WithField("service_id", service.ID).Debug("[service][usecase] add")
	return u.repos.Services.Save(ctx, service)
}

func (u *ProjectManager) AddSupplier(ctx context.Context, supplier entities.Supplier) error {
	u.log.WithField("supplier_id", supplier.ID).Debug("[supplier][usecase] add")
	return u.repos.Suppliers.Save(ctx, supplier)
}

func (u *ProjectManager) AddQuote(ctx context.Context, quote entities.Quote) error {
	if !finite(quote.Price, quote.Quantity) {
		return ErrInvalidAmount
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.log.WithFields(logrus.Fields{"quote_id": quote.ID, "project_id": quote.ProjectID}).Debug("[quote][usecase] add")
	return u.repos.Quotes.Save(ctx, quote)
}

func (u *ProjectManager) ListProjects(ctx context.Context) ([]entities.Project, error) {
	return u.repos.Projects.List(ctx)
}

func (u *ProjectManager) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	return u.repos.Materials.List(ctx)
}

func (u *ProjectManager) ListServices(ctx context.Context) ([]entities.Service, error) {
	return u.repos.Services.List(ctx)
}

func (u *ProjectManager) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	return u.repos.Suppliers.List(ctx)
}

func (u *ProjectManager) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repos.Quotes.List(ctx)
}

func (u *ProjectManager) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return u.repos.Orders.List(ctx)
}

// PlaceOrder creates an order in status "ordered" for an existing quote.
func (u *ProjectManager) PlaceOrder(ctx context.Context, quoteID int) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.placeOrder(ctx, quoteID)
}

func (u *ProjectManager) placeOrder(ctx context.Context, quoteID int) (entities.Order, error) {
	log := u.log.WithField("quote_id", quoteID)
	log.Info("[order][usecase] place start")

	_, found, err := u.repos.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		log.WithError(err).Error("[order][usecase] failed loading quote")
		return entities.Order{}, err
	}
	if !found {
		log.Warn("[order][usecase] quote not found")
		return entities.Order{}, ErrQuoteNotFound
	}

	id, err := u.repos.Orders.NextID(ctx)
	if err != nil {
		log.WithError(err).Error("[order][usecase] failed allocating order id")
		return entities.Order{}, err
	}

	order := entities.Order{ID: id, QuoteID: quoteID, Status: entities.OrderStatusOrdered}
	if err := u.repos.Orders.Save(ctx, order); err != nil {
		log.WithError(err).WithField("order_id", id).Error("[order][usecase] order repository save failed")
		return entities.Order{}, err
	}
	if u.recorder != nil {
		u.recorder.OrderPlaced()
	}
	log.WithField("order_id", id).Info("[order][usecase] place success")
	return order, nil
}

// GenerateOrders places one order per quote of the project, in quote order.
func (u *ProjectManager) GenerateOrders(ctx context.Context, projectID int) ([]entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	quotes, err := u.GetProjectQuotes(ctx, projectID)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(quotes))
	for _, q := range quotes {
		o, err := u.placeOrder(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	u.log.WithFields(logrus.Fields{"project_id": projectID, "orders": len(orders)}).Info("[order][usecase] generate success")
	return orders, nil
}

// UpdateOrder applies the provided fields. A final price is also written onto
// the originating quote when that quote still exists. If the write-back
// fails the order is restored, so the update applies fully or not at all.
func (u *ProjectManager) UpdateOrder(ctx context.Context, orderID int, upd OrderUpdate) (entities.Order, error) {
	if upd.FinalPrice != nil && !finite(*upd.FinalPrice) {
		return entities.Order{}, ErrInvalidAmount
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	log := u.log.WithField("order_id", orderID)
	prev, found, err := u.repos.Orders.GetByID(ctx, orderID)
	if err != nil {
		log.WithError(err).Error("[order][usecase] failed loading order")
		return entities.Order{}, err
	}
	if !found {
		log.Warn("[order][usecase] order not found")
		return entities.Order{}, ErrOrderNotFound
	}
	if upd.Status == nil && upd.FinalPrice == nil {
		return prev, nil
	}

	order := prev
	if upd.Status != nil {
		order.Status = *upd.Status
	}
	if upd.FinalPrice != nil {
		price := *upd.FinalPrice
		order.FinalPrice = &price
	}

	var quote entities.Quote
	writeBack := false
	if order.FinalPrice != nil {
		q, quoteFound, err := u.repos.Quotes.GetByID(ctx, order.QuoteID)
		if err != nil {
			log.WithError(err).Error("[order][usecase] failed loading quote")
			return entities.Order{}, err
		}
		if quoteFound {
			quote, writeBack = q, true
		} else {
			log.WithField("quote_id", order.QuoteID).Warn("[order][usecase] quote missing, price not written back")
		}
	}

	if err := u.repos.Orders.Save(ctx, order); err != nil {
		log.WithError(err).Error("[order][usecase] order repository save failed")
		return entities.Order{}, err
	}

	if writeBack {
		quote.Price = *order.FinalPrice
		if err := u.repos.Quotes.Save(ctx, quote); err != nil {
			log.WithError(err).Error("[order][usecase] quote price write-back failed")
			if rbErr := u.repos.Orders.Save(ctx, prev); rbErr != nil {
				log.WithError(rbErr).Error("[order][usecase] order rollback failed")
			}
			return entities.Order{}, err
		}
	}
	if u.recorder != nil {
		u.recorder.OrderUpdated(order.Status)
	}
	log.WithField("status", order.Status).Info("[order][usecase] update success")
	return order, nil
}

// GetProjectQuotes returns the project's quotes in insertion order.
func (u *ProjectManager) GetProjectQuotes(ctx context.Context, projectID int) ([]entities.Quote, error) {
	all, err := u.repos.Quotes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0)
	for _, q := range all {
		if q.ProjectID == projectID {
			out = append(out, q)
		}
	}
	return out, nil
}

// GetProjectTotal sums price * quantity over the project's quotes. Unknown
// projects total 0. Stored non-finite amounts are reported as errors.
func (u *ProjectManager) GetProjectTotal(ctx context.Context, projectID int) (float64, error) {
	quotes, err := u.GetProjectQuotes(ctx, projectID)
	if err != nil {
		return 0, err
	}
	total := decimal.Zero
	for _, q := range quotes {
		if !finite(q.Price, q.Quantity) {
			return 0, fmt.Errorf("quote %d holds a non-finite amount", q.ID)
		}
		total = total.Add(decimal.NewFromFloat(q.Price).Mul(decimal.NewFromFloat(q.Quantity)))
	}
	sum := total.InexactFloat64()
	if !finite(sum) {
		return 0, fmt.Errorf("project %d total overflows float64", projectID)
	}
	return sum, nil
}

// BestQuote returns the cheapest project quote referencing exactly the given
// material and service. The first minimum in quote order wins ties.
func (u *ProjectManager) BestQuote(ctx context.Context, projectID int, materialID, serviceID *int) (entities.Quote, bool, error) {
	quotes, err := u.GetProjectQuotes(ctx, projectID)
	if err != nil {
		return entities.Quote{}, false, err
	}

	var best entities.Quote
	found := false
	for _, q := range quotes {
		if !q.Matches(materialID, serviceID) {
			continue
		}
		if !found || q.Price < best.Price {
			best = q
			found = true
		}
	}
	return best, found, nil
}
