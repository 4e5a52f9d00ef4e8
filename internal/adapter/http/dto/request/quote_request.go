package request

import "project_materials/internal/domain/entities"

type QuoteRequest struct {
	ID         *int     `json:"id" binding:"required"`
	ProjectID  *int     `json:"project_id" binding:"required"`
	SupplierID *int     `json:"supplier_id" binding:"required"`
	MaterialID *int     `json:"material_id"`
	ServiceID  *int     `json:"service_id"`
	Quantity   *float64 `json:"quantity" binding:"required,finite"`
	Price      *float64 `json:"price" binding:"required,finite"`
}

func (r QuoteRequest) ToEntity() entities.Quote {
	return entities.Quote{
		ID:         *r.ID,
		ProjectID:  *r.ProjectID,
		SupplierID: *r.SupplierID,
		MaterialID: r.MaterialID,
		ServiceID:  r.ServiceID,
		Quantity:   *r.Quantity,
		Price:      *r.Price,
	}
}

// BestQuoteQuery selects the material/service pair to compare. Absent values
// only match quotes that reference nothing for that slot.
type BestQuoteQuery struct {
	MaterialID string `form:"material_id"`
	ServiceID  string `form:"service_id"`
}

func (q BestQuoteQuery) Refs() (materialID, serviceID *int, err error) {
	if materialID, err = parseOptionalInt("material_id", q.MaterialID); err != nil {
		return nil, nil, err
	}
	if serviceID, err = parseOptionalInt("service_id", q.ServiceID); err != nil {
		return nil, nil, err
	}
	return materialID, serviceID, nil
}

type QuantityQuery struct {
	BaseMeasure *float64 `form:"base_measure" binding:"required,finite"`
	Multiplier  *float64 `form:"multiplier" binding:"required,finite"`
}
