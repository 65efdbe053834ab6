package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStoreTransactionsQueryHandler reports revenue from delivered orders. Item
// totals are resolved the same way as everywhere else: the stored override when
// present, otherwise quantity × the current price.
type GetStoreTransactionsQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
	zone  *time.Location
}

func NewGetStoreTransactionsQueryHandler(
	db *gorm.DB,
	clock kernel.Clock,
	zone *time.Location,
) GetStoreTransactionsQueryHandler {
	if zone == nil {
		zone = time.UTC
	}
	return GetStoreTransactionsQueryHandler{db: db, clock: clock, zone: zone}
}

func (h GetStoreTransactionsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreTransactionsQuery,
) (TransactionsView, error) {
	if err := query.Validate(); err != nil {
		return TransactionsView{}, err
	}

	from, to := query.Window(h.clock.Now(), h.zone)
	out := TransactionsView{
		Days:         query.Days(),
		From:         from.UTC(),
		To:           to.UTC(),
		TotalRevenue: decimal.Zero,
		PaymentModes: make(map[string]PaymentModeSummary),
		Transactions: make([]TransactionView, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.location_id,
			o.customer_id,
			o.delivered_at,
			o.payment_mode,
			i.quantity,
			i.total_amount,
			sv.price
		FROM orders o
		JOIN stores s ON s.id = o.location_id
		LEFT JOIN order_items i ON i.order_id = o.id
		LEFT JOIN services sv ON sv.id = i.service_id
		WHERE s.operator_id = ?
			AND o.status = ?
			AND o.delivered_at IS NOT NULL
			AND o.delivered_at >= ?
			AND o.delivered_at < ?
		ORDER BY o.delivered_at DESC, o.id DESC, i.id
	`, query.Operator().ID(), order.Delivered.String(), from, to).Rows()
	if err != nil {
		return TransactionsView{}, err
	}
	defer rows.Close()

	var current *TransactionView
	for rows.Next() {
		var (
			t        TransactionView
			quantity *int
			override decimal.NullDecimal
			price    decimal.NullDecimal
		)

		err = rows.Scan(
			&t.OrderID,
			&t.LocationID,
			&t.CustomerID,
			&t.DeliveredAt,
			&t.PaymentMode,
			&quantity,
			&override,
			&price,
		)
		if err != nil {
			return TransactionsView{}, err
		}

		if current == nil || current.OrderID != t.OrderID {
			t.TotalAmount = decimal.Zero
			out.Transactions = append(out.Transactions, t)
			current = &out.Transactions[len(out.Transactions)-1]
		}
		if quantity == nil {
			continue
		}

		var stored *decimal.Decimal
		if override.Valid {
			stored = &override.Decimal
		}
		current.TotalAmount = current.TotalAmount.Add(services.ResolveTotal(*quantity, stored, price.Decimal))
	}

	if err = rows.Err(); err != nil {
		return TransactionsView{}, err
	}

	for _, t := range out.Transactions {
		out.TotalRevenue = out.TotalRevenue.Add(t.TotalAmount)

		mode := t.PaymentMode
		if mode == "" {
			mode = "unknown"
		}
		summary := out.PaymentModes[mode]
		summary.Count++
		summary.Amount = summary.Amount.Add(t.TotalAmount)
		out.PaymentModes[mode] = summary
	}
	out.TotalTransactions = len(out.Transactions)

	return out, nil
}
