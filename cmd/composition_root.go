package cmd

import (
	"log/slog"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/notificationrepo"
	"fulfillment/internal/core/application/notifications"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      kernel.Clock
	zone       *time.Location
	logger     *slog.Logger
	metrics    *metrics.Metrics
	notifier   commands.Notifier
}

// NewCompositionRoot wires the application. publisher may be nil, in which
// case notifications are only stored.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	logger *slog.Logger,
	m *metrics.Metrics,
	publisher ports.NotificationPublisher,
) CompositionRoot {
	clock := kernel.SystemClock{}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock,
		zone:       cfg.DisplayLocation(),
		logger:     logger,
		metrics:    m,
		notifier: notifications.NewDispatcher(
			notificationrepo.NewGormNotificationRepository(gormDB), publisher, clock, logger, m).
			WithPublishTimeout(cfg.Kafka.PublishTimeout),
	}
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.bookingUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateCreateWalkInOrderCommandHandler() *commands.CreateWalkInOrderCommandHandler {
	h := commands.NewCreateWalkInOrderCommandHandler(c.bookingUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRescheduleOrderCommandHandler() *commands.RescheduleOrderCommandHandler {
	h := commands.NewRescheduleOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	h := commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderItemsCommandHandler() *commands.UpdateOrderItemsCommandHandler {
	var f commands.OrderItemsUoWFactory = FuncOrderItemsUoWFactory(func() commands.OrderItemsUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateOrderItemsCommandHandler(f, c.notifier, c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateNearbyRadiusCommandHandler() *commands.UpdateNearbyRadiusCommandHandler {
	var f commands.SettingUoWFactory = FuncSettingUoWFactory(func() commands.SettingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewUpdateNearbyRadiusCommandHandler(f)
	return &h
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory())
	return &h
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() *commands.PurgeReadNotificationsCommandHandler {
	h := commands.NewPurgeReadNotificationsCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreOrdersQueryHandler() queries.GetStoreOrdersQueryHandler {
	return queries.NewGetStoreOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStoreTransactionsQueryHandler() queries.GetStoreTransactionsQueryHandler {
	return queries.NewGetStoreTransactionsQueryHandler(c.gormDB, c.clock, c.zone)
}

func (c *CompositionRoot) CreateGetTimeSlotsQueryHandler() queries.GetTimeSlotsQueryHandler {
	return queries.NewGetTimeSlotsQueryHandler(c.clock, c.zone)
}

func (c *CompositionRoot) CreateGetNearbyRadiusQueryHandler() queries.GetNearbyRadiusQueryHandler {
	return queries.NewGetNearbyRadiusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerNotificationsQueryHandler() queries.GetCustomerNotificationsQueryHandler {
	return queries.NewGetCustomerNotificationsQueryHandler(c.gormDB)
}

// HTTPServer builds the REST adapter over every use case.
func (c *CompositionRoot) HTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		CreateWalkInOrder:    c.CreateCreateWalkInOrderCommandHandler(),
		CancelOrder:          c.CreateCancelOrderCommandHandler(),
		RescheduleOrder:      c.CreateRescheduleOrderCommandHandler(),
		UpdateOrderStatus:    c.CreateUpdateOrderStatusCommandHandler(),
		UpdateOrderItems:     c.CreateUpdateOrderItemsCommandHandler(),
		UpdateNearbyRadius:   c.CreateUpdateNearbyRadiusCommandHandler(),
		MarkNotificationRead: c.CreateMarkNotificationReadCommandHandler(),

		CustomerOrders:        c.CreateGetCustomerOrdersQueryHandler(),
		OrderDetails:          c.CreateGetOrderDetailsQueryHandler(),
		StoreOrders:           c.CreateGetStoreOrdersQueryHandler(),
		StoreTransactions:     c.CreateGetStoreTransactionsQueryHandler(),
		TimeSlots:             c.CreateGetTimeSlotsQueryHandler(),
		NearbyRadius:          c.CreateGetNearbyRadiusQueryHandler(),
		CustomerNotifications: c.CreateGetCustomerNotificationsQueryHandler(),
	}, c.zone, !c.cfg.IsProduction())
}

func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeReadNotificationsCommandHandler(),
		jobs.RetentionConfig{
			Retention: c.cfg.Jobs.NotificationRetention,
			Schedule:  c.cfg.Jobs.RetentionSchedule,
		},
		c.metrics,
		c.logger,
	)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderItemsUoWFactory func() commands.OrderItemsUoW

func (f FuncOrderItemsUoWFactory) Create() commands.OrderItemsUoW {
	return f()
}

type FuncSettingUoWFactory func() commands.SettingUoW

func (f FuncSettingUoWFactory) Create() commands.SettingUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
