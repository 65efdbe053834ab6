package ports

import (
	"context"
)

// NearbyRadiusKey is the setting holding the booking search radius in kilometres.
const NearbyRadiusKey = "nearby_radius_km"

// SettingRepository stores string settings by key.
type SettingRepository interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Upsert writes the value and reports whether the key was created.
	Upsert(ctx context.Context, key, value string) (bool, error)
}
