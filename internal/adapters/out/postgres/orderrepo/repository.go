package orderrepo

import (
	"context"
	"errors"

	"fulfillment/internal/adapters/out/postgres/pgerr"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts the order and its items and returns them with their generated ids.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerr.Translate(err, "order", dto.LocationID)
	}

	return toDomain(dto)
}

// Update writes the order columns, then reconciles order_items with the aggregate:
// rows the aggregate no longer holds are deleted first, so a service removed and
// re-added in the same edit does not collide on (order_id, service_id).
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(columns(dto))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	kept := make([]int64, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.ID != 0 {
			kept = append(kept, item.ID)
		}
	}

	stale := db.Where("order_id = ?", dto.ID)
	if len(kept) > 0 {
		stale = stale.Where("id NOT IN ?", kept)
	}
	if err := stale.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	for i := range dto.Items {
		item := &dto.Items[i]
		if item.ID == 0 {
			if err := db.Omit(clause.Associations).Create(item).Error; err != nil {
				return pgerr.Translate(err, "service", item.ServiceID)
			}
			continue
		}

		err := db.Model(&OrderItemDTO{}).
			Where("id = ? AND order_id = ?", item.ID, dto.ID).
			Updates(map[string]any{
				"quantity":     item.Quantity,
				"total_amount": item.TotalAmount,
			}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves an order with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and holds a row lock on it until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) load(db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// columns lists every mutable column of the orders row. A map is used so that
// false and empty values are written too.
func columns(dto OrderDTO) map[string]any {
	return map[string]any{
		"address_id":            dto.AddressID,
		"delivery_address_line": dto.DeliveryAddressLine,
		"delivery_latitude":     dto.DeliveryLatitude,
		"delivery_longitude":    dto.DeliveryLongitude,
		"pickup_slot_start":     dto.PickupSlotStart,
		"pickup_slot_end":       dto.PickupSlotEnd,
		"status":                dto.Status,
		"is_express":            dto.IsExpress,
		"is_walk_in":            dto.IsWalkIn,
		"payment_mode":          dto.PaymentMode,
		"notes":                 dto.Notes,
		"confirmed_at":          dto.ConfirmedAt,
		"picked_up_at":          dto.PickedUpAt,
		"processing_at":         dto.ProcessingAt,
		"ready_for_delivery_at": dto.ReadyForDeliveryAt,
		"out_for_delivery_at":   dto.OutForDeliveryAt,
		"delivered_at":          dto.DeliveredAt,
		"cancelled_at":          dto.CancelledAt,
		"updated_at":            dto.UpdatedAt,
	}
}
