package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/address"
)

// AddressRepository reads customer addresses.
type AddressRepository interface {
	Get(ctx context.Context, id int64) (*address.Address, error)
}
