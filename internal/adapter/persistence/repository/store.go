package repository

// Table names, before the configured prefix is applied.
const (
	ProjectsTable  = "projects"
	MaterialsTable = "materials"
	ServicesTable  = "services"
	SuppliersTable = "suppliers"
	QuotesTable    = "quotes"
	OrdersTable    = "orders"
)

// DynamoStore bundles the DynamoDB repositories sharing one counters table.
type DynamoStore struct {
	Projects  *ProjectDynamoRepository
	Materials *MaterialDynamoRepository
	Services  *ServiceDynamoRepository
	Suppliers *SupplierDynamoRepository
	Quotes    *QuoteDynamoRepository
	Orders    *OrderDynamoRepository
	Counters  *CounterDynamoRepository
}

func NewDynamoStore(ddb DynamoAPI, tablePrefix string) *DynamoStore {
	counters := NewCounterDynamoRepository(ddb, tablePrefix+countersTable)
	return &DynamoStore{
		Projects:  NewProjectDynamoRepository(ddb, tablePrefix+ProjectsTable, counters),
		Materials: NewMaterialDynamoRepository(ddb, tablePrefix+MaterialsTable, counters),
		Services:  NewServiceDynamoRepository(ddb, tablePrefix+ServicesTable, counters),
		Suppliers: NewSupplierDynamoRepository(ddb, tablePrefix+SuppliersTable, counters),
		Quotes:    NewQuoteDynamoRepository(ddb, tablePrefix+QuotesTable, counters),
		Orders:    NewOrderDynamoRepository(ddb, tablePrefix+OrdersTable, counters),
		Counters:  counters,
	}
}
