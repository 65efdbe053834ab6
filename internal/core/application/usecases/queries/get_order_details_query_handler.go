package queries

import (
	"context"

	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

// Handle returns the order. A missing order and an order outside the actor's
// scope both yield ErrObjectNotFound.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	scope := "o.customer_id = ?"
	if query.Actor().IsOperator() {
		scope = "s.operator_id = ?"
	}

	orders, err := readOrders(ctx, h.db, `WHERE o.id = ? AND `+scope, query.OrderID(), query.Actor().ID())
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return orders[0], nil
}
