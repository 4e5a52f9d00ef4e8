package memory

// Store bundles one repository per entity kind. The zero value is not usable;
// build it with NewStore.
type Store struct {
	Projects  *ProjectRepository
	Materials *MaterialRepository
	Services  *ServiceRepository
	Suppliers *SupplierRepository
	Quotes    *QuoteRepository
	Orders    *OrderRepository
}

func NewStore() *Store {
	return &Store{
		Projects:  NewProjectRepository(),
		Materials: NewMaterialRepository(),
		Services:  NewServiceRepository(),
		Suppliers: NewSupplierRepository(),
		Quotes:    NewQuoteRepository(),
		Orders:    NewOrderRepository(),
	}
}
