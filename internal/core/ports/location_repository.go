package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/location"
)

// LocationRepository reads fulfillment locations (stores).
type LocationRepository interface {
	// Get retrieves a location by id.
	Get(ctx context.Context, id int64) (*location.Location, error)

	// GetEligibleForShare returns every active, unlocked location with a coordinate,
	// holding a share lock on the rows so a concurrent deactivation waits for the
	// surrounding transaction.
	GetEligibleForShare(ctx context.Context) ([]*location.Location, error)
}
