package interfaces

import (
	"context"
	"project_materials/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/catalog_repository_mock.go -package=mock_interfaces

// Catalog repositories keep records keyed by their caller-supplied id.
//
// Every implementation must:
//   - overwrite on Save with an existing id, keeping the original List position
//   - return records from List in first-insertion order, as copies

type IProjectRepository interface {
	Save(ctx context.Context, project entities.Project) error
	List(ctx context.Context) ([]entities.Project, error)
}

type IMaterialRepository interface {
	Save(ctx context.Context, material entities.Material) error
	List(ctx context.Context) ([]entities.Material, error)
}

type IServiceRepository interface {
	Save(ctx context.Context, service entities.Service) error
	List(ctx context.Context) ([]entities.Service, error)
}

type ISupplierRepository interface {
	Save(ctx context.Context, supplier entities.Supplier) error
	List(ctx context.Context) ([]entities.Supplier, error)
}
