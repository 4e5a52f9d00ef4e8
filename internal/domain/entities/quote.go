package entities

// Quote is one priced line item tying a project to a supplier for either a
// material or a service.
//
// Monetary representation:
//   - Price is the unit price; the line cost is Price * Quantity.
//   - Price is overwritten when an order placed from this quote receives a final price.

type Quote struct {
	ID         int     `json:"id"`
	ProjectID  int     `json:"project_id"`
	SupplierID int     `json:"supplier_id"`
	MaterialID *int    `json:"material_id"`
	ServiceID  *int    `json:"service_id"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
}

// Matches reports whether the quote references exactly the given material and
// service. A nil argument only matches an absent reference.
func (q Quote) Matches(materialID, serviceID *int) bool {
	return sameRef(q.MaterialID, materialID) && sameRef(q.ServiceID, serviceID)
}

func sameRef(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
