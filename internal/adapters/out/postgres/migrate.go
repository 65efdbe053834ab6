package postgres

import (
	"fulfillment/internal/adapters/out/postgres/addressrepo"
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/locationrepo"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/settingrepo"

	"gorm.io/gorm"
)

// Models lists every table the service owns, referenced tables first.
func Models() []any {
	return []any{
		&locationrepo.LocationDTO{},
		&catalogrepo.ServiceDTO{},
		&addressrepo.AddressDTO{},
		&settingrepo.SettingDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&notificationrepo.NotificationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Tables lists the table names in Models order, for truncation in tests.
func Tables() []string {
	return []string{"stores", "services", "addresses", "settings", "orders", "order_items", "notifications"}
}
