package routes

import (
	"context"
	"fmt"

	"project_materials/internal/adapter/persistence/memory"
	"project_materials/internal/adapter/persistence/repository"
	"project_materials/internal/infrastructure/config"
	"project_materials/internal/infrastructure/database"
	"project_materials/internal/usecase"

	"github.com/sirupsen/logrus"
)

// NewRepositories selects the storage backend named by cfg.StoreBackend.
func NewRepositories(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (usecase.Repositories, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Info("[store] using in-memory backend")
		s := memory.NewStore()
		return usecase.Repositories{
			Projects:  s.Projects,
			Materials: s.Materials,
			Services:  s.Services,
			Suppliers: s.Suppliers,
			Quotes:    s.Quotes,
			Orders:    s.Orders,
		}, nil
	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return usecase.Repositories{}, fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		log.WithFields(logrus.Fields{
			"region":       cfg.AWS.Region,
			"endpoint":     cfg.AWS.DynamoDBEndpoint,
			"table_prefix": cfg.AWS.TablePrefix,
		}).Info("[store] using dynamodb backend")
		s := repository.NewDynamoStore(ddb, cfg.AWS.TablePrefix)
		return usecase.Repositories{
			Projects:  s.Projects,
			Materials: s.Materials,
			Services:  s.Services,
			Suppliers: s.Suppliers,
			Quotes:    s.Quotes,
			Orders:    s.Orders,
		}, nil
	default:
		return usecase.Repositories{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
