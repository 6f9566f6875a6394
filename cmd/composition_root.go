package cmd

import (
	"log/slog"

	"gruberoo/internal/adapters/out/csvstore"
	"gruberoo/internal/adapters/out/postgres"
	"gruberoo/internal/core/application/usecases/commands"
	"gruberoo/internal/core/application/usecases/queries"
	"gruberoo/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateModifyOrderCommandHandler() commands.ModifyOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.TriageUoWFactory = FuncTriageUoWFactory(func() commands.TriageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateProcessQueueCommandHandler() commands.ProcessQueueCommandHandler {
	var f commands.TriageUoWFactory = FuncTriageUoWFactory(func() commands.TriageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessQueueCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkProcessCommandHandler() commands.BulkProcessCommandHandler {
	var f commands.TriageUoWFactory = FuncTriageUoWFactory(func() commands.TriageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkProcessCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRestaurantCatalogQueryHandler() queries.GetRestaurantCatalogQueryHandler {
	return queries.NewGetRestaurantCatalogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRefundStackQueryHandler() (queries.GetRefundStackQueryHandler, error) {
	return queries.NewGetRefundStackQueryHandler(c.uowFactory.Create().RefundRepository())
}

func (c *CompositionRoot) CreateGetReconciliationReportQueryHandler() (queries.GetReconciliationReportQueryHandler, error) {
	return queries.NewGetReconciliationReportQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateDataLoader() (*csvstore.Loader, error) {
	return csvstore.NewLoader(&c.uowFactory, c.config.DataDir, c.logger)
}

func (c *CompositionRoot) CreateSnapshotWriter() (*csvstore.Writer, error) {
	return csvstore.NewWriter(&c.uowFactory, c.config.DataDir, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	writer, err := c.CreateSnapshotWriter()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(c.CreateBulkProcessCommandHandler(), writer, c.logger), nil
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncTriageUoWFactory func() commands.TriageUoW

func (f FuncTriageUoWFactory) Create() commands.TriageUoW {
	return f()
}
