package response

import (
	"encoding/json"
	"testing"
	"time"

	"project_materials/internal/domain/entities"
)

func TestFromProject(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	res := FromProject(entities.Project{ID: 1, Name: "House", StartDate: &start})

	body, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":1,"name":"House","address":null,"start_date":"2024-03-01","end_date":null}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestFromOrder(t *testing.T) {
	body, _ := json.Marshal(FromOrder(entities.Order{ID: 1, QuoteID: 10, Status: entities.OrderStatusOrdered}))
	want := `{"id":1,"quote_id":10,"status":"ordered","final_price":null}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestFromQuote(t *testing.T) {
	mat := 5
	body, _ := json.Marshal(FromQuote(entities.Quote{ID: 10, ProjectID: 1, SupplierID: 1, MaterialID: &mat, Quantity: 2, Price: 3}))
	want := `{"id":10,"project_id":1,"supplier_id":1,"material_id":5,"service_id":null,"quantity":2,"price":3}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestListsAreNeverNull(t *testing.T) {
	cases := map[string]any{
		"projects":  FromProjects(nil),
		"materials": FromMaterials(nil),
		"services":  FromServices(nil),
		"suppliers": FromSuppliers(nil),
		"quotes":    FromQuotes(nil),
		"orders":    FromOrders(nil),
	}
	for name, v := range cases {
		t.Run(name, func(t *testing.T) {
			body, _ := json.Marshal(v)
			if string(body) != "[]" {
				t.Fatalf("expected [], got %s", body)
			}
		})
	}
}

func TestFromSupplier_EmptyMaterials(t *testing.T) {
	body, _ := json.Marshal(FromSupplier(entities.Supplier{ID: 1, Name: "ACME"}))
	want := `{"id":1,"name":"ACME","contact":null,"materials":[]}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}
