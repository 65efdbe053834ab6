package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/notification"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// UnitOfWorkIntegrationTestSuite exercises transactions and locking against a real Postgres.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	pg      *pgtest.Database
	factory ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(pg.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())
	suite.Require().NoError(suite.pg.Seed(
		pgtest.Store(1, 100, 12.9716, 77.5946),
		pgtest.Service(3, "45.50"),
	))
}

func (suite *UnitOfWorkIntegrationTestSuite) newWalkIn() *order.Order {
	item, err := order.NewItem(3, 1, nil)
	suite.Require().NoError(err)
	o, err := order.NewWalkInOrder(order.Booking{CustomerID: 10, LocationID: 1, Items: []*order.Item{item}}, now)
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIndependentInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.LocationRepository())
	suite.NotNil(uow1.CatalogRepository())
	suite.NotNil(uow1.AddressRepository())
	suite.NotNil(uow1.SettingRepository())
	suite.NotNil(uow1.NotificationRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "a second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	saved, err := uow.OrderRepository().Add(ctx, suite.newWalkIn())
	suite.Require().NoError(err)
	created, err := uow.SettingRepository().Upsert(ctx, ports.NearbyRadiusKey, "7")
	suite.Require().NoError(err)
	suite.True(created)

	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, saved.ID())
	suite.Require().NoError(err)
	value, found, err := fresh.SettingRepository().Get(ctx, ports.NearbyRadiusKey)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("7", value)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	saved, err := uow.OrderRepository().Add(ctx, suite.newWalkIn())
	suite.Require().NoError(err)
	_, err = uow.SettingRepository().Upsert(ctx, ports.NearbyRadiusKey, "7")
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, saved.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.OrderRepository().Get(ctx, saved.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, found, err := fresh.SettingRepository().Get(ctx, ports.NearbyRadiusKey)
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_SerializesWriters() {
	ctx := context.Background()
	saved, err := suite.factory.Create().OrderRepository().Add(ctx, suite.newWalkIn())
	suite.Require().NoError(err)

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	locked, err := first.OrderRepository().GetForUpdate(ctx, saved.ID())
	suite.Require().NoError(err)

	type read struct {
		status order.Status
		err    error
	}
	done := make(chan read, 1)
	go func() {
		second := suite.factory.Create()
		if beginErr := second.Begin(ctx); beginErr != nil {
			done <- read{err: beginErr}
			return
		}
		defer func() { _ = second.Rollback(ctx) }()
		o, getErr := second.OrderRepository().GetForUpdate(ctx, saved.ID())
		if getErr != nil {
			done <- read{err: getErr}
			return
		}
		done <- read{status: o.Status()}
	}()

	select {
	case <-done:
		suite.Fail("second transaction must wait for the row lock")
	case <-time.After(300 * time.Millisecond):
	}

	next, _, err := order.ApplyTransition(locked, order.Processing, now.Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().NoError(first.OrderRepository().Update(ctx, next))
	suite.Require().NoError(first.Commit(ctx))

	select {
	case r := <-done:
		suite.Require().NoError(r.err)
		suite.Equal(order.Processing, r.status)
	case <-time.After(5 * time.Second):
		suite.Fail("second transaction did not resume after commit")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetEligibleForShare_BlocksDeactivation() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	eligible, err := uow.LocationRepository().GetEligibleForShare(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)

	done := make(chan error, 1)
	go func() {
		done <- suite.pg.DB.Exec("UPDATE stores SET is_active = false WHERE id = 1").Error
	}()

	select {
	case <-done:
		suite.Fail("deactivation must wait for the booking transaction")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(uow.Commit(ctx))

	select {
	case err = <-done:
		suite.Require().NoError(err)
	case <-time.After(5 * time.Second):
		suite.Fail("deactivation did not resume after commit")
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestNotificationRepository_Lifecycle() {
	ctx := context.Background()
	repo := suite.factory.Create().NotificationRepository()

	n, err := notification.NewNotification(notification.Notice{
		CustomerID: 10,
		LocationID: 1,
		Title:      "Order Placed",
		Message:    "Your order #1 has been placed.",
		Type:       notification.TypeOrderCreated,
	}, now.Add(-72*time.Hour))
	suite.Require().NoError(err)

	saved, err := repo.Add(ctx, n)
	suite.Require().NoError(err)
	suite.Positive(saved.ID())

	deleted, err := repo.DeleteReadBefore(ctx, now)
	suite.Require().NoError(err)
	suite.Zero(deleted, "unread notifications are kept")

	suite.True(saved.MarkRead())
	suite.Require().NoError(repo.Update(ctx, saved))

	loaded, err := repo.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsRead())
	suite.Equal(notification.TypeOrderCreated, loaded.Type())

	deleted, err = repo.DeleteReadBefore(ctx, now.Add(-96*time.Hour))
	suite.Require().NoError(err)
	suite.Zero(deleted, "newer than the cutoff")

	deleted, err = repo.DeleteReadBefore(ctx, now)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = repo.Get(ctx, saved.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSettingRepository_Upsert() {
	ctx := context.Background()
	repo := suite.factory.Create().SettingRepository()

	_, found, err := repo.Get(ctx, ports.NearbyRadiusKey)
	suite.Require().NoError(err)
	suite.False(found)

	created, err := repo.Upsert(ctx, ports.NearbyRadiusKey, "5")
	suite.Require().NoError(err)
	suite.True(created)

	created, err = repo.Upsert(ctx, ports.NearbyRadiusKey, "9.5")
	suite.Require().NoError(err)
	suite.False(created)

	value, found, err := repo.Get(ctx, ports.NearbyRadiusKey)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("9.5", value)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestLocationAndCatalogRepositories() {
	ctx := context.Background()
	locked := pgtest.Store(2, 100, 12.9, 77.5)
	locked.AdminLocked = true
	noPoint := pgtest.Store(3, 101, 0, 0)
	noPoint.Latitude, noPoint.Longitude = nil, nil
	suite.Require().NoError(suite.pg.Seed(locked, noPoint, pgtest.Address(7, 10, 12.97, 77.59)))

	uow := suite.factory.Create()

	eligible, err := uow.LocationRepository().GetEligibleForShare(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(eligible, 1)
	suite.Equal(int64(1), eligible[0].ID())

	store, err := uow.LocationRepository().Get(ctx, 3)
	suite.Require().NoError(err)
	suite.Nil(store.Point())
	suite.Equal(int64(101), store.OperatorID())

	_, err = uow.LocationRepository().Get(ctx, 99)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	services, err := uow.CatalogRepository().GetByIDs(ctx, []int64{3, 42})
	suite.Require().NoError(err)
	suite.Len(services, 1)
	suite.Equal("45.5", services[3].Price().String())

	addr, err := uow.AddressRepository().Get(ctx, 7)
	suite.Require().NoError(err)
	suite.True(addr.BelongsTo(10))
	snapshot, err := addr.Snapshot()
	suite.Require().NoError(err)
	point, err := kernel.NewGeoPoint(12.97, 77.59)
	suite.Require().NoError(err)
	suite.Equal(point.String(), snapshot.Point().String())
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
