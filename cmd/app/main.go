package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gruberoo/cmd"
	"gruberoo/docs"
	"gruberoo/internal/adapters/in/http"
	"gruberoo/internal/adapters/out/postgres/customerrepo"
	"gruberoo/internal/adapters/out/postgres/orderrepo"
	"gruberoo/internal/adapters/out/postgres/refundrepo"
	"gruberoo/internal/adapters/out/postgres/restaurantrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Gruberoo Order API
// @version 1.0
// @description Order placement, queue processing and reconciliation for the Gruberoo delivery service.
// @BasePath /api/v1
func main() {
	configs := getConfigs()
	logger := slog.Default()

	gormDB := mustConnectDB(configs)

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	if configs.DataDir != "" {
		loadData(root, logger)
	}

	jobManager, err := root.CreateJobManager()
	if err != nil {
		log.Fatalf("creating job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("starting jobs: %v", err)
	}

	e := newWebServer(root)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != nethttp.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	jobManager.StopAll()
	if configs.DataDir != "" {
		saveSnapshots(root, logger)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
		DataDir:    goDotEnvVariable("DATA_DIR"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}

	err = db.AutoMigrate(
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
	)
	if err != nil {
		log.Fatalf("migrating database: %v", err)
	}
	return db
}

func loadData(root cmd.CompositionRoot, logger *slog.Logger) {
	loader, err := root.CreateDataLoader()
	if err != nil {
		log.Fatalf("creating data loader: %v", err)
	}
	summary, err := loader.LoadAll(context.Background())
	if err != nil {
		log.Fatalf("loading data files: %v", err)
	}
	logger.Info("data files loaded",
		"restaurants", summary.Restaurants.Loaded,
		"foodItems", summary.FoodItems.Loaded,
		"customers", summary.Customers.Loaded,
		"orders", summary.Orders.Loaded)
}

func saveSnapshots(root cmd.CompositionRoot, logger *slog.Logger) {
	writer, err := root.CreateSnapshotWriter()
	if err != nil {
		logger.Error("creating snapshot writer", "error", err)
		return
	}
	if err := writer.SaveSnapshots(context.Background()); err != nil {
		logger.Error("saving snapshots", "error", err)
	}
}

func newWebServer(root cmd.CompositionRoot) *echo.Echo {
	refundStackHandler, err := root.CreateGetRefundStackQueryHandler()
	if err != nil {
		log.Fatalf("creating refund stack query handler: %v", err)
	}
	reconciliationHandler, err := root.CreateGetReconciliationReportQueryHandler()
	if err != nil {
		log.Fatalf("creating reconciliation query handler: %v", err)
	}

	server := http.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateProcessQueueCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateModifyOrderCommandHandler(),
		root.CreateBulkProcessCommandHandler(),
		root.CreateGetRestaurantCatalogQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		refundStackHandler,
		reconciliationHandler,
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	docs.SwaggerInfo.BasePath = "/api/v1"
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	server.RegisterRoutes(e)
	return e
}
