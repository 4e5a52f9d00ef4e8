package repository

import (
	"context"

	"project_materials/internal/domain/entities"
	"project_materials/internal/usecase/interfaces"
)

const orderIDCounter = "order_id"

type orderItem struct {
	ID         int      `dynamodbav:"id"`
	Seq        int64    `dynamodbav:"seq"`
	QuoteID    int      `dynamodbav:"quote_id"`
	Status     string   `dynamodbav:"status"`
	FinalPrice *float64 `dynamodbav:"final_price,omitempty"`
}

func (it orderItem) sequence() int64 { return it.Seq }

// OrderDynamoRepository persists orders. Ids come from the "order_id" entry
// of the counters table.
//
// Table requirements:
//   - PK: id (number)

type OrderDynamoRepository struct {
	table    dynamoTable[orderItem]
	counters *CounterDynamoRepository
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string, counters *CounterDynamoRepository) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		table:    newDynamoTable[orderItem](ddb, tableName, counters),
		counters: counters,
	}
}

func (r *OrderDynamoRepository) NextID(ctx context.Context) (int, error) {
	id, err := r.counters.Next(ctx, orderIDCounter)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (r *OrderDynamoRepository) Save(ctx context.Context, order entities.Order) error {
	return r.table.put(ctx, order.ID, func(seq int64) orderItem {
		return orderItem{
			ID:         order.ID,
			Seq:        seq,
			QuoteID:    order.QuoteID,
			Status:     string(order.Status),
			FinalPrice: order.FinalPrice,
		}
	})
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id int) (entities.Order, bool, error) {
	it, found, err := r.table.get(ctx, id)
	if err != nil || !found {
		return entities.Order{}, found, err
	}
	return fromOrderItem(it), true, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := r.table.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(items))
	for _, it := range items {
		out = append(out, fromOrderItem(it))
	}
	return out, nil
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:         it.ID,
		QuoteID:    it.QuoteID,
		Status:     entities.OrderStatus(it.Status),
		FinalPrice: it.FinalPrice,
	}
}
