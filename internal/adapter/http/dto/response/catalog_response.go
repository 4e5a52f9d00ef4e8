package response

import "project_materials/internal/domain/entities"

type MaterialResponse struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Notes *string `json:"notes"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{ID: m.ID, Name: m.Name, Unit: m.Unit, Notes: m.Notes}
}

func FromMaterials(materials []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}

type ServiceResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Notes     *string `json:"notes"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, UnitPrice: s.UnitPrice, Notes: s.Notes}
}

func FromServices(services []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromService(s))
	}
	return out
}

type SupplierResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Contact   *string `json:"contact"`
	Materials []int   `json:"materials"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	materials := s.Materials
	if materials == nil {
		materials = []int{}
	}
	return SupplierResponse{ID: s.ID, Name: s.Name, Contact: s.Contact, Materials: materials}
}

func FromSuppliers(suppliers []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, FromSupplier(s))
	}
	return out
}
