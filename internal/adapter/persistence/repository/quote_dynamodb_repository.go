package repository

import (
	"context"

	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase/interfaces"
)

type quoteItem struct {
	ID         int     `dynamodbav:"id"`
	Seq        int64   `dynamodbav:"seq"`
	ProjectID  int     `dynamodbav:"project_id"`
	SupplierID int     `dynamodbav:"supplier_id"`
	MaterialID *int    `dynamodbav:"material_id,omitempty"`
	ServiceID  *int    `dynamodbav:"service_id,omitempty"`
	Quantity   float64 `dynamodbav:"quantity"`
	Price      float64 `dynamodbav:"price"`
}

func (it quoteItem) sequence() int64 { return it.Seq }

// QuoteDynamoRepository persists quotes.
//
// Table requirements:
//   - PK: id (number)
//
// Project quotes are filtered in memory after a full scan, matching the
// single-process data volumes this service targets.

type QuoteDynamoRepository struct {
	table dynamoTable[quoteItem]
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{table: newDynamoTable[quoteItem](ddb, tableName, counters)}
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, quote entities.Quote) error {
	return r.table.put(ctx, quote.ID, func(seq int64) quoteItem {
		return toQuoteItem(quote, seq)
	})
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id int) (entities.Quote, bool, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.Quote{}, found, err
	}
	return fromQuoteItem(it), true, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(items))
	for _, it := range items {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func toQuoteItem(q entities.Quote, seq int64) quoteItem {
	return quoteItem{
		ID:         q.ID,
		Seq:        seq,
		ProjectID:  q.ProjectID,
		SupplierID: q.SupplierID,
		MaterialID: q.MaterialID,
		ServiceID:  q.ServiceID,
		Quantity:   q.Quantity,
		Price:      q.Price,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		SupplierID: it.SupplierID,
		MaterialID: it.MaterialID,
		ServiceID:  it.ServiceID,
		Quantity:   it.Quantity,
		Price:      it.Price,
	}
}
