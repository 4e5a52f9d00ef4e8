package response

import "project_materials/internal/domain/entities"

type QuoteResponse struct {
	ID         int     `json:"id"`
	ProjectID  int     `json:"project_id"`
	SupplierID int     `json:"supplier_id"`
	MaterialID *int    `json:"material_id"`
	ServiceID  *int    `json:"service_id"`
	Quantity   float64 `json:"quantity"`
	Price      float64 `json:"price"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		ProjectID:  q.ProjectID,
		SupplierID: q.SupplierID,
		MaterialID: q.MaterialID,
		ServiceID:  q.ServiceID,
		Quantity:   q.Quantity,
		Price:      q.Price,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

type OrderResponse struct {
	ID         int      `json:"id"`
	QuoteID    int      `json:"quote_id"`
	Status     string   `json:"status"`
	FinalPrice *float64 `json:"final_price"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{ID: o.ID, QuoteID: o.QuoteID, Status: string(o.Status), FinalPrice: o.FinalPrice}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
