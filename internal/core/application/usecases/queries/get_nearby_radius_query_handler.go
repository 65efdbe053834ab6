package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetNearbyRadiusQueryHandler struct {
	db *gorm.DB
}

func NewGetNearbyRadiusQueryHandler(db *gorm.DB) GetNearbyRadiusQueryHandler {
	return GetNearbyRadiusQueryHandler{db: db}
}

// Handle returns ErrObjectNotFound when the setting does not exist. A stored value
// that is not a positive number reports the default radius.
func (h GetNearbyRadiusQueryHandler) Handle(ctx context.Context, query GetNearbyRadiusQuery) (NearbyRadiusView, error) {
	if err := query.Validate(); err != nil {
		return NearbyRadiusView{}, err
	}

	var value string
	err := h.db.WithContext(ctx).Raw(`SELECT value FROM settings WHERE key = ?`, ports.NearbyRadiusKey).
		Row().
		Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return NearbyRadiusView{}, errs.NewObjectNotFoundErrorWithCause("setting", ports.NearbyRadiusKey, ErrNearbyRadiusNotSet)
	}
	if err != nil {
		return NearbyRadiusView{}, err
	}

	return NearbyRadiusView{
		Key:      ports.NearbyRadiusKey,
		Value:    value,
		RadiusKm: services.ParseRadius(value, true),
	}, nil
}
