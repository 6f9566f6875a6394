package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"gruberoo/internal/adapters/out/postgres/orderrepo"
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"
	"gruberoo/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_counters").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(id int64) *order.Order {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)

	o, err := order.NewOrder(id, "alice@example.com", "r-1", createdAt, deliveryAt, "1 Main Street", "CC")
	suite.Require().NoError(err)

	item, err := order.NewLineItem("Carbonara", "Classic pasta", kernel.NewMoneyFromCents(1250), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(item))

	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	restored, err := suite.repository.Get(ctx, 1001)
	suite.Require().NoError(err)
	suite.Equal(int64(1001), restored.ID())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal("alice@example.com", restored.CustomerEmail())
	suite.Len(restored.Items(), 1)
	suite.Equal(int64(3000), restored.Total().Cents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesItemsAndStatus() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(1001)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	dessert, err := order.NewLineItem("Tiramisu", "Dessert", kernel.NewMoneyFromCents(600), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(dessert))
	suite.Require().NoError(testOrder.RemoveItem("Carbonara"))
	suite.Require().NoError(testOrder.Confirm())

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, 1001)
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, restored.Status())
	suite.Len(restored.Items(), 1)
	suite.Equal("Tiramisu", restored.Items()[0].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder() {
	err := suite.repository.Update(context.Background(), suite.createTestOrder(9999))
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 4040)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByRestaurant_OrderedByID() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	for _, id := range []int64{1003, 1001, 1002} {
		suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(id)))
	}

	orders, err := suite.repository.GetAllByRestaurant(ctx, "r-1")
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(int64(1001), orders[0].ID())
	suite.Equal(int64(1003), orders[2].ID())

	none, err := suite.repository.GetAllByRestaurant(ctx, "r-404")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingOlderThan() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	stale := suite.createTestOrder(1001)
	suite.Require().NoError(suite.repository.Add(ctx, stale))

	confirmed := suite.createTestOrder(1002)
	suite.Require().NoError(confirmed.Confirm())
	suite.Require().NoError(suite.repository.Add(ctx, confirmed))

	pending, err := suite.repository.GetAllPendingOlderThan(ctx, stale.CreatedAt().Add(time.Minute))
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(int64(1001), pending[0].ID())

	none, err := suite.repository.GetAllPendingOlderThan(ctx, stale.CreatedAt().Add(-time.Minute))
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextID_SequentialFrom1001() {
	ctx := context.Background()

	first, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1001), first)

	second, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1002), second)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
