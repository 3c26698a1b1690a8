package cmd

import (
	"fmt"
	"log/slog"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/inmemory"
	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/payments"
	"marketplace/internal/adapters/out/postgres/customerrepo"
	"marketplace/internal/adapters/out/postgres/driverrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/core/application/assignment"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
)

// CompositionRoot wires repositories, the assignment engine and all use case
// handlers. Storage is selected once at construction: postgres when a
// database handle is supplied, in-memory otherwise.
type CompositionRoot struct {
	config Config
	logger *slog.Logger

	customers ports.CustomerRepository
	orders    ports.OrderRepository
	drivers   ports.DriverRepository
	payments  ports.PaymentRepository

	notifier ports.Notifier
	gateway  ports.PaymentGateway
	engine   *assignment.Engine
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	root := CompositionRoot{
		config: config,
		logger: logger,
	}

	if gormDB != nil {
		root.customers = customerrepo.NewGormCustomerRepository(gormDB)
		root.orders = orderrepo.NewGormOrderRepository(gormDB)
		root.drivers = driverrepo.NewGormDriverRepository(gormDB)
		root.payments = paymentrepo.NewGormPaymentRepository(gormDB)
	} else {
		root.customers = inmemory.NewCustomerRepository()
		root.orders = inmemory.NewOrderRepository()
		root.drivers = inmemory.NewDriverRepository()
		root.payments = inmemory.NewPaymentRepository()
	}

	root.notifier = notify.NewNotifier(logger)
	root.gateway = payments.NewGateway(root.payments, logger)
	root.engine = assignment.NewEngine(root.orders, root.drivers, matchingPolicy(config, logger), logger)

	return root
}

func matchingPolicy(config Config, logger *slog.Logger) services.MatchingPolicy {
	switch config.MatchingPolicy {
	case "", "first_available":
		return services.NewFirstAvailablePolicy()
	case "best_rated":
		return services.NewBestRatedPolicy()
	default:
		logger.Warn("unknown matching policy, falling back to first_available",
			"policy", config.MatchingPolicy)
		return services.NewFirstAvailablePolicy()
	}
}

func (c *CompositionRoot) CreateOnboardCustomerCommandHandler() commands.OnboardCustomerCommandHandler {
	return commands.NewOnboardCustomerCommandHandler(c.customers)
}

func (c *CompositionRoot) CreateOnboardDriverCommandHandler() commands.OnboardDriverCommandHandler {
	return commands.NewOnboardDriverCommandHandler(c.drivers, c.engine)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.customers, c.orders, c.notifier, c.engine)
}

func (c *CompositionRoot) CreatePickupOrderCommandHandler() commands.PickupOrderCommandHandler {
	return commands.NewPickupOrderCommandHandler(c.orders, c.notifier)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orders, c.drivers, c.notifier, c.engine)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orders, c.drivers, c.notifier, c.engine)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orders, c.gateway, c.notifier)
}

func (c *CompositionRoot) CreateRateDriverCommandHandler() commands.RateDriverCommandHandler {
	return commands.NewRateDriverCommandHandler(c.drivers)
}

func (c *CompositionRoot) CreateExpireOrdersCommandHandler() commands.ExpireOrdersCommandHandler {
	return commands.NewExpireOrdersCommandHandler(c.orders, c.CreateCancelOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateGetTopDriversQueryHandler() queries.GetTopDriversQueryHandler {
	return queries.NewGetTopDriversQueryHandler(c.drivers)
}

func (c *CompositionRoot) CreateGetUncompletedOrdersQueryHandler() queries.GetUncompletedOrdersQueryHandler {
	return queries.NewGetUncompletedOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateOnboardCustomerCommandHandler(),
		c.CreateOnboardDriverCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreatePickupOrderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreatePayOrderCommandHandler(),
		c.CreateRateDriverCommandHandler(),
		c.CreateGetTopDriversQueryHandler(),
		c.CreateGetUncompletedOrdersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireOrdersCommandHandler(),
		c.config.OrderTimeout,
		c.config.SweepInterval,
		c.logger,
	)
}

// OpenDatabase connects to postgres and migrates the marketplace schema.
func OpenDatabase(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&driverrepo.DriverDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return db, nil
}
