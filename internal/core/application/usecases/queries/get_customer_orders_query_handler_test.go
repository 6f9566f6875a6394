package queries_test

import (
	"context"
	"testing"
	"time"

	"gruberoo/internal/adapters/out/postgres/orderrepo"
	"gruberoo/internal/core/application/usecases/queries"
	"gruberoo/internal/core/domain/model/kernel"
	"gruberoo/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCustomerOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCustomerOrdersQueryHandler
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.CounterDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetCustomerOrdersQueryHandler(db)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetCustomerOrdersQuery("alice@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyCustomersOrdersOrderedByID() {
	suite.saveOrder(suite.createTestOrder(1002, "alice@example.com"))
	suite.saveOrder(suite.createTestOrder(1001, "alice@example.com"))
	suite.saveOrder(suite.createTestOrder(1003, "bob@example.com"))

	query, err := queries.NewGetCustomerOrdersQuery("alice@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(int64(1001), result[0].ID)
	suite.Equal(int64(1002), result[1].ID)
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_RecomputesTotalFromItems() {
	testOrder := suite.createTestOrder(1001, "alice@example.com")
	suite.saveOrder(testOrder)

	query, err := queries.NewGetCustomerOrdersQuery("alice@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal("r-1", result[0].RestaurantID)
	suite.Equal("Pending", result[0].Status)
	suite.Require().Len(result[0].Items, 2)

	suite.Equal("Carbonara", result[0].Items[0].Name)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.True(result[0].Items[0].Subtotal.IsEqual(kernel.NewMoneyFromCents(2500)))

	suite.Equal("Tiramisu", result[0].Items[1].Name)
	suite.True(result[0].Items[1].Subtotal.IsEqual(kernel.NewMoneyFromCents(600)))

	// 2500 + 600 + 500 delivery fee
	suite.True(result[0].Total.IsEqual(kernel.NewMoneyFromCents(3600)))
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_OrderWithoutItems_TotalIsZero() {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)
	emptyOrder, err := order.NewOrder(1001, "alice@example.com", "r-1", createdAt, deliveryAt, "1 Main Street", "CC")
	suite.Require().NoError(err)
	suite.saveOrder(emptyOrder)

	query, err := queries.NewGetCustomerOrdersQuery("alice@example.com")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].Total.IsZero())
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCustomerOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetCustomerOrdersQuery constructor")
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) createTestOrder(id int64, customerEmail string) *order.Order {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	deliveryAt := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)

	o, err := order.NewOrder(id, customerEmail, "r-1", createdAt, deliveryAt, "1 Main Street", "CC")
	suite.Require().NoError(err)

	carbonara, err := order.NewLineItem("Carbonara", "Classic pasta", kernel.NewMoneyFromCents(1250), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(carbonara))

	tiramisu, err := order.NewLineItem("Tiramisu", "Dessert", kernel.NewMoneyFromCents(600), 1)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddItem(tiramisu))

	return o
}

func (suite *GetCustomerOrdersQueryHandlerTestSuite) saveOrder(o *order.Order) {
	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	err := repo.Add(context.Background(), o)
	suite.Require().NoError(err)
}

func TestGetCustomerOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(GetCustomerOrdersQueryHandlerTestSuite))
}
