package interfaces

import (
	"context"
	"project_materials/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository stores quotes with the same ordering rules as the catalog
// repositories. GetByID reports whether the quote exists.

type IQuoteRepository interface {
	Save(ctx context.Context, quote entities.Quote) error
	GetByID(ctx context.Context, id int) (entities.Quote, bool, error)
	List(ctx context.Context) ([]entities.Quote, error)
}
