package postgres_test

import (
	"context"
	"testing"
	"time"

	"gruberoo/internal/adapters/out/postgres"
	"gruberoo/internal/adapters/out/postgres/customerrepo"
	"gruberoo/internal/adapters/out/postgres/orderrepo"
	"gruberoo/internal/adapters/out/postgres/refundrepo"
	"gruberoo/internal/adapters/out/postgres/restaurantrepo"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/core/domain/model/refund"
	"gruberoo/internal/core/domain/model/restaurant"
	"gruberoo/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// repositories using a PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.CounterDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuDTO{},
		&restaurantrepo.FoodItemDTO{},
		&restaurantrepo.SpecialOfferDTO{},
		&restaurantrepo.QueueSlotDTO{},
		&customerrepo.CustomerDTO{},
		&customerrepo.CustomerOrderDTO{},
		&refundrepo.RefundEntryDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(`
		TRUNCATE TABLE orders, order_items, order_counters, restaurants,
		menus, food_items, special_offers, queue_slots, customers,
		customer_orders, refund_entries`).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestOrder(id int64) *order.Order {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)

	o, err := order.NewOrder(id, "alice@example.com", "r-1", createdAt, deliveryAt, "1 Main Street", "CC")
	suite.Require().NoError(err)
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	rest, err := restaurant.NewRestaurant("r-1", "Trattoria", "trattoria@example.com")
	suite.Require().NoError(err)
	suite.Require().NoError(rest.Enqueue(1001))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newTestOrder(1001)))
	suite.Require().NoError(uow.RefundRepository().Push(ctx, refund.Entry{
		OrderID:  1001,
		PushedAt: time.Now().UTC(),
	}))

	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restored, err := verify.RestaurantRepository().Get(ctx, "r-1")
	suite.Require().NoError(err)
	suite.Equal([]int64{1001}, restored.Queue())

	entries, err := verify.RefundRepository().Snapshot(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(int64(1001), entries[0].OrderID)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, suite.newTestOrder(1001)))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	_, err := verify.OrderRepository().Get(ctx, 1001)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Rollback(context.Background()), gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
