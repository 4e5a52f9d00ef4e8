package interfaces

import (
	"context"
	"project_materials/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_mock.go -package=mock_interfaces

// IOrderRepository stores orders and allocates their ids.
//
// NextID is a monotonic counter starting at 1. Callers serialise NextID+Save
// so that, without deletions, ids equal the number of stored orders plus one.

type IOrderRepository interface {
	NextID(ctx context.Context) (int, error)
	Save(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, id int) (entities.Order, bool, error)
	List(ctx context.Context) ([]entities.Order, error)
}
