// Package orderrepo persists order aggregates: the orders row, with its delivery
// address snapshot and lifecycle stamps, and the order_items rows it owns.
package orderrepo

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/locationrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. address_id is kept for reference only; the
// delivery_* columns hold the snapshot taken at booking time.
type OrderDTO struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement"`
	CustomerID          int64      `gorm:"not null;index"`
	LocationID          int64      `gorm:"not null;index"`
	AddressID           *int64     `gorm:"index"`
	DeliveryAddressLine *string    `gorm:"type:text"`
	DeliveryLatitude    *float64   `gorm:"type:double precision"`
	DeliveryLongitude   *float64   `gorm:"type:double precision"`
	PickupSlotStart     time.Time  `gorm:"type:timestamptz;not null"`
	PickupSlotEnd       time.Time  `gorm:"type:timestamptz;not null"`
	Status              string     `gorm:"type:varchar(32);not null;index"`
	IsExpress           bool       `gorm:"not null;default:false"`
	IsWalkIn            bool       `gorm:"not null;default:false"`
	PaymentMode         string     `gorm:"type:varchar(16);not null"`
	Notes               string     `gorm:"not null;default:''"`
	ConfirmedAt         *time.Time `gorm:"type:timestamptz"`
	PickedUpAt          *time.Time `gorm:"type:timestamptz"`
	ProcessingAt        *time.Time `gorm:"type:timestamptz"`
	ReadyForDeliveryAt  *time.Time `gorm:"type:timestamptz"`
	OutForDeliveryAt    *time.Time `gorm:"type:timestamptz"`
	DeliveredAt         *time.Time `gorm:"type:timestamptz"`
	CancelledAt         *time.Time `gorm:"type:timestamptz"`
	CreatedAt           time.Time  `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt           time.Time  `gorm:"type:timestamptz;not null;autoUpdateTime:false"`

	Items []OrderItemDTO            `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Store *locationrepo.LocationDTO `gorm:"foreignKey:LocationID;constraint:OnDelete:RESTRICT"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. A NULL total_amount means the line is priced
// from the catalog when read.
type OrderItemDTO struct {
	ID          int64               `gorm:"primaryKey;autoIncrement"`
	OrderID     int64               `gorm:"not null;uniqueIndex:idx_order_items_order_service,priority:1"`
	ServiceID   int64               `gorm:"not null;uniqueIndex:idx_order_items_order_service,priority:2"`
	Quantity    int                 `gorm:"not null"`
	TotalAmount decimal.NullDecimal `gorm:"type:numeric(10,2)"`

	Service *catalogrepo.ServiceDTO `gorm:"foreignKey:ServiceID;constraint:OnDelete:RESTRICT"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()
	m := s.Milestones

	dto := OrderDTO{
		ID:                 s.ID,
		CustomerID:         s.CustomerID,
		LocationID:         s.LocationID,
		PickupSlotStart:    s.Window.Start(),
		PickupSlotEnd:      s.Window.End(),
		Status:             s.Status.String(),
		IsExpress:          s.IsExpress,
		IsWalkIn:           s.IsWalkIn,
		PaymentMode:        s.PaymentMode,
		Notes:              s.Notes,
		ConfirmedAt:        m.ConfirmedAt,
		PickedUpAt:         m.PickedUpAt,
		ProcessingAt:       m.ProcessingAt,
		ReadyForDeliveryAt: m.ReadyForDeliveryAt,
		OutForDeliveryAt:   m.OutForDeliveryAt,
		DeliveredAt:        m.DeliveredAt,
		CancelledAt:        m.CancelledAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		Items:              make([]OrderItemDTO, 0, len(s.Items)),
	}

	if a := s.Address; a != nil {
		addressID, line := a.AddressID(), a.Line()
		lat, lng := a.Point().Latitude(), a.Point().Longitude()
		dto.AddressID = &addressID
		dto.DeliveryAddressLine = &line
		dto.DeliveryLatitude = &lat
		dto.DeliveryLongitude = &lng
	}

	for _, item := range s.Items {
		itemDTO := OrderItemDTO{
			ID:        item.ID(),
			OrderID:   s.ID,
			ServiceID: item.ServiceID(),
			Quantity:  item.Quantity(),
		}
		if total := item.TotalAmount(); total != nil {
			itemDTO.TotalAmount = decimal.NewNullDecimal(*total)
		}
		dto.Items = append(dto.Items, itemDTO)
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	window, err := kernel.NewPickupWindow(dto.PickupSlotStart, dto.PickupSlotEnd)
	if err != nil {
		return nil, err
	}

	var delivery *order.DeliveryAddress
	if dto.AddressID != nil && dto.DeliveryLatitude != nil && dto.DeliveryLongitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.DeliveryLatitude, *dto.DeliveryLongitude)
		if pointErr != nil {
			return nil, pointErr
		}
		var line string
		if dto.DeliveryAddressLine != nil {
			line = *dto.DeliveryAddressLine
		}
		snapshot, addrErr := order.NewDeliveryAddress(*dto.AddressID, line, point)
		if addrErr != nil {
			return nil, addrErr
		}
		delivery = &snapshot
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var total *decimal.Decimal
		if itemDTO.TotalAmount.Valid {
			t := itemDTO.TotalAmount.Decimal
			total = &t
		}
		item, itemErr := order.RestoreItem(itemDTO.ID, itemDTO.ServiceID, itemDTO.Quantity, total)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:          dto.ID,
		CustomerID:  dto.CustomerID,
		LocationID:  dto.LocationID,
		Address:     delivery,
		Window:      window,
		Status:      status,
		IsExpress:   dto.IsExpress,
		IsWalkIn:    dto.IsWalkIn,
		PaymentMode: dto.PaymentMode,
		Notes:       dto.Notes,
		Milestones: order.Milestones{
			ConfirmedAt:        dto.ConfirmedAt,
			PickedUpAt:         dto.PickedUpAt,
			ProcessingAt:       dto.ProcessingAt,
			ReadyForDeliveryAt: dto.ReadyForDeliveryAt,
			OutForDeliveryAt:   dto.OutForDeliveryAt,
			DeliveredAt:        dto.DeliveredAt,
			CancelledAt:        dto.CancelledAt,
		},
		Items:     items,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
