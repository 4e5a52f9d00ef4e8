package memory

import (
	"context"
	"sync"

	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase/interfaces"
)

type ProjectRepository struct{ t *table[entities.Project] }

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{t: newTable(cloneProject)}
}

func (r *ProjectRepository) Save(_ context.Context, project entities.Project) error {
	r.t.put(project.ID, project)
	return nil
}

func (r *ProjectRepository) List(_ context.Context) ([]entities.Project, error) {
	return r.t.list(), nil
}

type MaterialRepository struct{ t *table[entities.Material] }

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{t: newTable(cloneMaterial)}
}

func (r *MaterialRepository) Save(_ context.Context, material entities.Material) error {
	r.t.put(material.ID, material)
	return nil
}

func (r *MaterialRepository) List(_ context.Context) ([]entities.Material, error) {
	return r.t.list(), nil
}

type ServiceRepository struct{ t *table[entities.Service] }

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{t: newTable(cloneService)}
}

func (r *ServiceRepository) Save(_ context.Context, service entities.Service) error {
	r.t.put(service.ID, service)
	return nil
}

func (r *ServiceRepository) List(_ context.Context) ([]entities.Service, error) {
	return r.t.list(), nil
}

type SupplierRepository struct{ t *table[entities.Supplier] }

var _ interfaces.ISupplierRepository = (*SupplierRepository)(nil)

func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{t: newTable(entities.Supplier.Clone)}
}

func (r *SupplierRepository) Save(_ context.Context, supplier entities.Supplier) error {
	r.t.put(supplier.ID, supplier)
	return nil
}

func (r *SupplierRepository) List(_ context.Context) ([]entities.Supplier, error) {
	return r.t.list(), nil
}

type QuoteRepository struct{ t *table[entities.Quote] }

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{t: newTable(cloneQuote)}
}

func (r *QuoteRepository) Save(_ context.Context, quote entities.Quote) error {
	r.t.put(quote.ID, quote)
	return nil
}

func (r *QuoteRepository) GetByID(_ context.Context, id int) (entities.Quote, bool, error) {
	q, ok := r.t.get(id)
	return q, ok, nil
}

func (r *QuoteRepository) List(_ context.Context) ([]entities.Quote, error) {
	return r.t.list(), nil
}

// OrderRepository allocates ids from a counter that never goes backwards.
type OrderRepository struct {
	t *table[entities.Order]

	mu   sync.Mutex
	last int
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{t: newTable(cloneOrder)}
}

func (r *OrderRepository) NextID(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last++
	return r.last, nil
}

func (r *OrderRepository) Save(_ context.Context, order entities.Order) error {
	r.t.put(order.ID, order)
	return nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int) (entities.Order, bool, error) {
	o, ok := r.t.get(id)
	return o, ok, nil
}

func (r *OrderRepository) List(_ context.Context) ([]entities.Order, error) {
	return r.t.list(), nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneProject(p entities.Project) entities.Project {
	p.Address = cloneString(p.Address)
	if p.StartDate != nil {
		d := *p.StartDate
		p.StartDate = &d
	}
	if p.EndDate != nil {
		d := *p.EndDate
		p.EndDate = &d
	}
	return p
}

func cloneMaterial(m entities.Material) entities.Material {
	m.Notes = cloneString(m.Notes)
	return m
}

func cloneService(s entities.Service) entities.Service {
	s.Notes = cloneString(s.Notes)
	return s
}

func cloneQuote(q entities.Quote) entities.Quote {
	if q.MaterialID != nil {
		v := *q.MaterialID
		q.MaterialID = &v
	}
	if q.ServiceID != nil {
		v := *q.ServiceID
		q.ServiceID = &v
	}
	return q
}

func cloneOrder(o entities.Order) entities.Order {
	if o.FinalPrice != nil {
		v := *o.FinalPrice
		o.FinalPrice = &v
	}
	return o
}
