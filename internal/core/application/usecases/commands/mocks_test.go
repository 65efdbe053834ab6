package commands_test

import (
	"context"
	"math"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/address"
	"fulfillment/internal/core/domain/model/catalog"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/location"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	saved, _ := args.Get(0).(*order.Order)
	return saved, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context, id int64) (*location.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*location.Location)
	return l, args.Error(1)
}

func (m *MockLocationRepository) GetEligibleForShare(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*location.Location)
	return l, args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*catalog.Service, error) {
	args := m.Called(ctx, ids)
	s, _ := args.Get(0).(map[int64]*catalog.Service)
	return s, args.Error(1)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) Get(ctx context.Context, id int64) (*address.Address, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*address.Address)
	return a, args.Error(1)
}

type MockSettingRepository struct{ mock.Mock }

func (m *MockSettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, key, value string) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(
	ctx context.Context,
	n *notification.Notification,
) (*notification.Notification, error) {
	args := m.Called(ctx, n)
	saved, _ := args.Get(0).(*notification.Notification)
	return saved, args.Error(1)
}

func (m *MockNotificationRepository) Get(ctx context.Context, id int64) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	return m.Called().Get(0).(ports.LocationRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	return m.Called().Get(0).(ports.CatalogRepository)
}

func (m *MockUoW) AddressRepository() ports.AddressRepository {
	return m.Called().Get(0).(ports.AddressRepository)
}

func (m *MockUoW) SettingRepository() ports.SettingRepository {
	return m.Called().Get(0).(ports.SettingRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() *MockUoW {
	return m.Called().Get(0).(*MockUoW)
}

type bookingFactory struct{ *MockUoWFactory }

func (f bookingFactory) Create() commands.BookingUoW { return f.MockUoWFactory.Create() }

type orderFactory struct{ *MockUoWFactory }

func (f orderFactory) Create() commands.OrderUoW { return f.MockUoWFactory.Create() }

type orderItemsFactory struct{ *MockUoWFactory }

func (f orderItemsFactory) Create() commands.OrderItemsUoW { return f.MockUoWFactory.Create() }

type settingFactory struct{ *MockUoWFactory }

func (f settingFactory) Create() commands.SettingUoW { return f.MockUoWFactory.Create() }

type notificationFactory struct{ *MockUoWFactory }

func (f notificationFactory) Create() commands.NotificationUoW { return f.MockUoWFactory.Create() }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Dispatch(ctx context.Context, notice notification.Notice) {
	m.Called(ctx, notice)
}

// fixtures

var now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

var clock = kernel.FixedClock{At: now}

func customer(t *testing.T, id int64) kernel.Actor {
	t.Helper()
	a, err := kernel.NewCustomer(id)
	require.NoError(t, err)
	return a
}

func operator(t *testing.T, id int64) kernel.Actor {
	t.Helper()
	a, err := kernel.NewOperator(id)
	require.NoError(t, err)
	return a
}

// pointEast returns a point km kilometres east of (0, 0).
func pointEast(t *testing.T, km float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(0, km/kernel.EarthRadiusKm*180/math.Pi)
	require.NoError(t, err)
	return p
}

func storeAt(t *testing.T, id, operatorID int64, km float64) *location.Location {
	t.Helper()
	p := pointEast(t, km)
	l, err := location.RestoreLocation(id, operatorID, "Store", &p, true, false)
	require.NoError(t, err)
	return l
}

func homeOf(t *testing.T, id, customerID int64) *address.Address {
	t.Helper()
	p := pointEast(t, 0)
	a, err := address.RestoreAddress(id, customerID, "1 Main Road", &p)
	require.NoError(t, err)
	return a
}

func service(t *testing.T, id int64, price string) *catalog.Service {
	t.Helper()
	s, err := catalog.RestoreService(id, "Wash", decimal.RequireFromString(price), true)
	require.NoError(t, err)
	return s
}

func window(t *testing.T) kernel.PickupWindow {
	t.Helper()
	w, err := kernel.NewPickupWindow(now.Add(26*time.Hour), now.Add(28*time.Hour))
	require.NoError(t, err)
	return w
}

func storedOrder(t *testing.T, id int64, status order.Status) *order.Order {
	t.Helper()
	item, err := order.RestoreItem(900, 3, 2, nil)
	require.NoError(t, err)
	o, err := order.RestoreOrder(order.Snapshot{
		ID:          id,
		CustomerID:  10,
		LocationID:  1,
		Window:      window(t),
		Status:      status,
		PaymentMode: order.PaymentModeCash,
		Items:       []*order.Item{item},
		CreatedAt:   now.Add(-time.Hour),
		UpdatedAt:   now.Add(-time.Hour),
	})
	require.NoError(t, err)
	return o
}
