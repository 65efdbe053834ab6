package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/catalog"
)

// CatalogRepository reads services and their current prices.
type CatalogRepository interface {
	// GetByIDs returns the services found among ids, keyed by id.
	// Missing ids are simply absent from the map.
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*catalog.Service, error)
}
