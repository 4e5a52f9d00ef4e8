package request

import "project_materials/internal/domain/entities"

type MaterialRequest struct {
	ID    *int    `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
	Notes *string `json:"notes"`
}

func (r MaterialRequest) ToEntity() entities.Material {
	return entities.Material{ID: *r.ID, Name: r.Name, Unit: r.Unit, Notes: r.Notes}
}

type ServiceRequest struct {
	ID        *int     `json:"id" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	UnitPrice *float64 `json:"unit_price" binding:"required,finite"`
	Notes     *string  `json:"notes"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{ID: *r.ID, Name: r.Name, UnitPrice: *r.UnitPrice, Notes: r.Notes}
}

type SupplierRequest struct {
	ID        *int    `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Contact   *string `json:"contact"`
	Materials []int   `json:"materials"`
}

func (r SupplierRequest) ToEntity() entities.Supplier {
	materials := r.Materials
	if materials == nil {
		materials = []int{}
	}
	return entities.Supplier{ID: *r.ID, Name: r.Name, Contact: r.Contact, Materials: materials}
}
