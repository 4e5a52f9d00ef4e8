package repository

import (
	"context"
	"time"

	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase/interfaces"
)

const dateLayout = "2006-01-02"

type projectItem struct {
	ID        int     `dynamodbav:"id"`
	Seq       int64   `dynamodbav:"seq"`
	Name      string  `dynamodbav:"name"`
	Address   *string `dynamodbav:"address,omitempty"`
	StartDate *string `dynamodbav:"start_date,omitempty"`
	EndDate   *string `dynamodbav:"end_date,omitempty"`
}

func (it projectItem) sequence() int64 { return it.Seq }

type materialItem struct {
	ID    int     `dynamodbav:"id"`
	Seq   int64   `dynamodbav:"seq"`
	Name  string  `dynamodbav:"name"`
	Unit  string  `dynamodbav:"unit"`
	Notes *string `dynamodbav:"notes,omitempty"`
}

func (it materialItem) sequence() int64 { return it.Seq }

type serviceItem struct {
	ID        int     `dynamodbav:"id"`
	Seq       int64   `dynamodbav:"seq"`
	Name      string  `dynamodbav:"name"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Notes     *string `dynamodbav:"notes,omitempty"`
}

func (it serviceItem) sequence() int64 { return it.Seq }

type supplierItem struct {
	ID        int     `dynamodbav:"id"`
	Seq       int64   `dynamodbav:"seq"`
	Name      string  `dynamodbav:"name"`
	Contact   *string `dynamodbav:"contact,omitempty"`
	Materials []int   `dynamodbav:"materials"`
}

func (it supplierItem) sequence() int64 { return it.Seq }

// ProjectDynamoRepository persists projects.
//
// Table requirements:
//   - PK: id (number)

type ProjectDynamoRepository struct {
	table dynamoTable[projectItem]
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{table: newDynamoTable[projectItem](ddb, tableName, counters)}
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, project entities.Project) error {
	return r.table.put(ctx, project.ID, func(seq int64) projectItem {
		return toProjectItem(project, seq)
	})
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

type MaterialDynamoRepository struct {
	table dynamoTable[materialItem]
}

var _ interfaces.IMaterialRepository = (*MaterialDynamoRepository)(nil)

func NewMaterialDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *MaterialDynamoRepository {
	return &MaterialDynamoRepository{table: newDynamoTable[materialItem](ddb, tableName, counters)}
}

func (r *MaterialDynamoRepository) Save(ctx context.Context, material entities.Material) error {
	return r.table.put(ctx, material.ID, func(seq int64) materialItem {
		return materialItem{ID: material.ID, Seq: seq, Name: material.Name, Unit: material.Unit, Notes: material.Notes}
	})
}

func (r *MaterialDynamoRepository) List(ctx context.Context) ([]entities.Material, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Material, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Material{ID: it.ID, Name: it.Name, Unit: it.Unit, Notes: it.Notes})
	}
	return out, nil
}

type ServiceDynamoRepository struct {
	table dynamoTable[serviceItem]
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{table: newDynamoTable[serviceItem](ddb, tableName, counters)}
}

func (r *ServiceDynamoRepository) Save(ctx context.Context, service entities.Service) error {
	return r.table.put(ctx, service.ID, func(seq int64) serviceItem {
		return serviceItem{ID: service.ID, Seq: seq, Name: service.Name, UnitPrice: service.UnitPrice, Notes: service.Notes}
	})
}

func (r *ServiceDynamoRepository) List(ctx context.Context) ([]entities.Service, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Service, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Service{ID: it.ID, Name: it.Name, UnitPrice: it.UnitPrice, Notes: it.Notes})
	}
	return out, nil
}

type SupplierDynamoRepository struct {
	table dynamoTable[supplierItem]
}

var _ interfaces.ISupplierRepository = (*SupplierDynamoRepository)(nil)

func NewSupplierDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *SupplierDynamoRepository {
	return &SupplierDynamoRepository{table: newDynamoTable[supplierItem](ddb, tableName, counters)}
}

func (r *SupplierDynamoRepository) Save(ctx context.Context, supplier entities.Supplier) error {
	materials := supplier.Materials
	if materials == nil {
		materials = []int{}
	}
	return r.table.put(ctx, supplier.ID, func(seq int64) supplierItem {
		return supplierItem{ID: supplier.ID, Seq: seq, Name: supplier.Name, Contact: supplier.Contact, Materials: materials}
	})
}

func (r *SupplierDynamoRepository) List(ctx context.Context) ([]entities.Supplier, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(items))
	for _, it := range items {
		materials := it.Materials
		if materials == nil {
			materials = []int{}
		}
		out = append(out, entities.Supplier{ID: it.ID, Name: it.Name, Contact: it.Contact, Materials: materials})
	}
	return out, nil
}

func toProjectItem(p entities.Project, seq int64) projectItem {
	return projectItem{
		ID:        p.ID,
		Seq:       seq,
		Name:      p.Name,
		Address:   p.Address,
		StartDate: formatDate(p.StartDate),
		EndDate:   formatDate(p.EndDate),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:        it.ID,
		Name:      it.Name,
		Address:   it.Address,
		StartDate: parseDate(it.StartDate),
		EndDate:   parseDate(it.EndDate),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
