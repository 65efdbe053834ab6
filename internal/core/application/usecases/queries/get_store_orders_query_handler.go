package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetStoreOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetStoreOrdersQueryHandler(db *gorm.DB) GetStoreOrdersQueryHandler {
	return GetStoreOrdersQueryHandler{db: db}
}

// Handle returns the orders ordered by pickup start, earliest first.
func (h GetStoreOrdersQueryHandler) Handle(ctx context.Context, query GetStoreOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if status := query.Status(); status != nil {
		return readOrders(ctx, h.db, `
			WHERE s.operator_id = ? AND o.status = ?
			ORDER BY o.pickup_slot_start, o.id
		`, query.Operator().ID(), status.String())
	}

	return readOrders(ctx, h.db, `
		WHERE s.operator_id = ?
		ORDER BY o.pickup_slot_start, o.id
	`, query.Operator().ID())
}
