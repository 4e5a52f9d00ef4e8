package request

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"project_materials/internal/domain/entities"
)

// Form payloads posted by the HTML interface. Every field arrives as text;
// blank optional fields mean "absent".

type ProjectForm struct {
	ID        string `form:"id" binding:"required"`
	Name      string `form:"name" binding:"required"`
	Address   string `form:"address"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (f ProjectForm) ToEntity() (entities.Project, error) {
	id, err := parseInt("id", f.ID)
	if err != nil {
		return entities.Project{}, err
	}
	start, err := parseDate(optionalText(f.StartDate))
	if err != nil {
		return entities.Project{}, err
	}
	end, err := parseDate(optionalText(f.EndDate))
	if err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:        id,
		Name:      strings.TrimSpace(f.Name),
		Address:   optionalText(f.Address),
		StartDate: start,
		EndDate:   end,
	}, nil
}

type MaterialForm struct {
	ID    string `form:"id" binding:"required"`
	Name  string `form:"name" binding:"required"`
	Unit  string `form:"unit" binding:"required"`
	Notes string `form:"notes"`
}

func (f MaterialForm) ToEntity() (entities.Material, error) {
	id, err := parseInt("id", f.ID)
	if err != nil {
		return entities.Material{}, err
	}
	return entities.Material{
		ID:    id,
		Name:  strings.TrimSpace(f.Name),
		Unit:  strings.TrimSpace(f.Unit),
		Notes: optionalText(f.Notes),
	}, nil
}

type ServiceForm struct {
	ID        string `form:"id" binding:"required"`
	Name      string `form:"name" binding:"required"`
	UnitPrice string `form:"unit_price" binding:"required"`
	Notes     string `form:"notes"`
}

func (f ServiceForm) ToEntity() (entities.Service, error) {
	id, err := parseInt("id", f.ID)
	if err != nil {
		return entities.Service{}, err
	}
	price, err := parseFloat("unit_price", f.UnitPrice)
	if err != nil {
		return entities.Service{}, err
	}
	return entities.Service{
		ID:        id,
		Name:      strings.TrimSpace(f.Name),
		UnitPrice: price,
		Notes:     optionalText(f.Notes),
	}, nil
}

type SupplierForm struct {
	ID        string `form:"id" binding:"required"`
	Name      string `form:"name" binding:"required"`
	Contact   string `form:"contact"`
	Materials string `form:"materials"`
}

// ToEntity parses Materials as a comma separated id list ("1, 2,3").
func (f SupplierForm) ToEntity() (entities.Supplier, error) {
	id, err := parseInt("id", f.ID)
	if err != nil {
		return entities.Supplier{}, err
	}
	materials := []int{}
	for _, part := range strings.Split(f.Materials, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		m, err := parseInt("materials", part)
		if err != nil {
			return entities.Supplier{}, err
		}
		materials = append(materials, m)
	}
	return entities.Supplier{
		ID:        id,
		Name:      strings.TrimSpace(f.Name),
		Contact:   optionalText(f.Contact),
		Materials: materials,
	}, nil
}

type QuoteForm struct {
	ID         string `form:"id" binding:"required"`
	ProjectID  string `form:"project_id" binding:"required"`
	SupplierID string `form:"supplier_id" binding:"required"`
	MaterialID string `form:"material_id"`
	ServiceID  string `form:"service_id"`
	Quantity   string `form:"quantity" binding:"required"`
	Price      string `form:"price" binding:"required"`
}

func (f QuoteForm) ToEntity() (entities.Quote, error) {
	var q entities.Quote
	var err error
	if q.ID, err = parseInt("id", f.ID); err != nil {
		return entities.Quote{}, err
	}
	if q.ProjectID, err = parseInt("project_id", f.ProjectID); err != nil {
		return entities.Quote{}, err
	}
	if q.SupplierID, err = parseInt("supplier_id", f.SupplierID); err != nil {
		return entities.Quote{}, err
	}
	if q.MaterialID, err = parseOptionalInt("material_id", f.MaterialID); err != nil {
		return entities.Quote{}, err
	}
	if q.ServiceID, err = parseOptionalInt("service_id", f.ServiceID); err != nil {
		return entities.Quote{}, err
	}
	if q.Quantity, err = parseFloat("quantity", f.Quantity); err != nil {
		return entities.Quote{}, err
	}
	if q.Price, err = parseFloat("price", f.Price); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

type OrderForm struct {
	QuoteID string `form:"quote_id" binding:"required"`
}

func (f OrderForm) QuoteIDValue() (int, error) {
	return parseInt("quote_id", f.QuoteID)
}

// CompleteOrderForm marks an order completed at its final price.
type CompleteOrderForm struct {
	OrderID    string `form:"order_id" binding:"required"`
	FinalPrice string `form:"final_price" binding:"required"`
}

func (f CompleteOrderForm) Values() (int, float64, error) {
	id, err := parseInt("order_id", f.OrderID)
	if err != nil {
		return 0, 0, err
	}
	price, err := parseFloat("final_price", f.FinalPrice)
	if err != nil {
		return 0, 0, err
	}
	return id, price, nil
}

func optionalText(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func parseInt(field, v string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return n, nil
}

func parseOptionalInt(field, v string) (*int, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := parseInt(field, v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseFloat(field, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return f, nil
}
