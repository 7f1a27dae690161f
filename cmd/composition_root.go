package cmd

import (
	"errors"
	"log/slog"
	"time"

	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/jobs"

	"gorm.io/gorm"
)

const (
	defaultPurgeSchedule  = "0 0 * * * *" // hourly
	defaultPurgeRetention = 72 * time.Hour
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePurgeDeletedOrdersCommandHandler() commands.PurgeDeletedOrdersCommandHandler {
	return commands.NewPurgeDeletedOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTokenVerifier() StaticTokenVerifier {
	return StaticTokenVerifier{token: c.configs.AuthToken}
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	schedule := c.configs.PurgeSchedule
	if schedule == "" {
		schedule = defaultPurgeSchedule
	}

	retention := defaultPurgeRetention
	if c.configs.PurgeRetention != "" {
		if parsed, err := time.ParseDuration(c.configs.PurgeRetention); err == nil {
			retention = parsed
		}
	}

	purgeHandler := c.CreatePurgeDeletedOrdersCommandHandler()
	return jobs.NewJobManager(&purgeHandler, schedule, retention, logger)
}

// StaticTokenVerifier accepts a single pre-shared token and resolves it to
// the system actor. Real identity providers plug in behind the same
// TokenVerifier interface.
type StaticTokenVerifier struct {
	token string
}

func (v StaticTokenVerifier) Verify(token string) (string, error) {
	if v.token == "" || token != v.token {
		return "", errors.New("unknown token")
	}
	return "System", nil
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
