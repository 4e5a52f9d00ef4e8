package entities

// Material is an item of the material catalog, measured in Unit (m3, kg, bag...).
type Material struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Notes *string `json:"notes"`
}

// Service is a priced unit of labour or equipment.
type Service struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Notes     *string `json:"notes"`
}

// Supplier lists the materials it can deliver. Material ids are informative
// only and are not checked against the catalog.
type Supplier struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Contact   *string `json:"contact"`
	Materials []int   `json:"materials"`
}

// Clone returns a copy that does not share the Materials backing array.
func (s Supplier) Clone() Supplier {
	out := s
	if s.Materials != nil {
		out.Materials = append(make([]int, 0, len(s.Materials)), s.Materials...)
	}
	return out
}

// CalculateQuantity returns the quantity obtained by applying a multiplier
// to a base measure (e.g. area * consumption per m2).
func CalculateQuantity(baseMeasure, multiplier float64) float64 {
	return baseMeasure * multiplier
}
