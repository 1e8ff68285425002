package cmd

import (
	"io"
	"log/slog"

	httpadapter "kirana/internal/adapters/in/http"
	"kirana/internal/adapters/in/tools"
	"kirana/internal/adapters/out/gormdb"
	"kirana/internal/adapters/out/kafka"
	"kirana/internal/core/application/facade"
	"kirana/internal/core/application/usecases/commands"
	"kirana/internal/core/application/usecases/queries"
	"kirana/internal/core/domain/model/cart"
	"kirana/internal/core/domain/model/catalog"
	"kirana/internal/core/domain/services"
	"kirana/internal/core/ports"
	"kirana/internal/jobs"
	"kirana/internal/pkg/metrics"

	"gorm.io/gorm"
)

// CompositionRoot owns the long-lived pieces of the application (database,
// catalog store, cart registry, event publisher, metrics, supervisor) and
// builds the short-lived handlers on top of them.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   gormdb.GormUnitOfWorkFactory
	catalogStore *catalog.Store
	carts        *cart.Registry
	publisher    ports.OrderEventPublisher
	orderMetrics *metrics.OrderMetrics
	supervisor   *jobs.LifecycleSupervisor
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, store *catalog.Store, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		gormDB:       gormDB,
		uowFactory:   *gormdb.NewGormUnitOfWorkFactory(gormDB),
		catalogStore: store,
		carts:        cart.NewRegistry(),
		publisher:    buildPublisher(config, logger),
		orderMetrics: metrics.NewOrderMetrics(),
		logger:       logger,
	}

	root.supervisor = jobs.NewLifecycleSupervisor(
		root.CreateAdvanceOrderCommandHandler(),
		config.LifecycleInterval,
		root.orderMetrics,
		logger,
	)

	return root
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, services.NewCheckoutService(), c.publisher, c.orderMetrics, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher, c.orderMetrics, c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.publisher, c.orderMetrics, c.logger)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderHistoryQueryHandler() queries.OrderHistoryQueryHandler {
	return queries.NewOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInFlightOrdersQueryHandler() queries.GetInFlightOrdersQueryHandler {
	return queries.NewGetInFlightOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrderFacade() facade.OrderFacade {
	return facade.NewOrderFacade(
		c.catalogStore,
		c.carts,
		c.CreatePlaceOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderStatusQueryHandler(),
		c.CreateOrderHistoryQueryHandler(),
		c.supervisor,
		c.logger,
	)
}

func (c *CompositionRoot) CreateToolkit() tools.Toolkit {
	return tools.NewToolkit(c.CreateOrderFacade(), c.logger)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(c.CreateToolkit())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetInFlightOrdersQueryHandler(), c.supervisor, c.logger)
}

// Close releases long-lived outbound resources. Today that is the kafka
// writer; the noop publisher has nothing to release.
func (c *CompositionRoot) Close() error {
	if closer, ok := c.publisher.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// buildPublisher returns a kafka-backed publisher when brokers and a topic
// are configured, and a noop publisher otherwise. The application never
// refuses to start over kafka.
func buildPublisher(config Config, logger *slog.Logger) ports.OrderEventPublisher {
	client := kafka.NewClient(config.KafkaHost)
	if !client.Enabled() {
		logger.Info("kafka disabled, order events will not be published")
		return kafka.NewNoopPublisher()
	}

	if config.KafkaOrderChangedTopic == "" {
		logger.Warn("KAFKA_ORDER_CHANGED_TOPIC is empty, order events will not be published")
		return kafka.NewNoopPublisher()
	}

	publisher, err := kafka.NewPublisher(client, config.KafkaOrderChangedTopic)
	if err != nil {
		logger.Warn("kafka publisher unavailable, order events will not be published", "error", err)
		return kafka.NewNoopPublisher()
	}

	logger.Info("kafka publisher ready", "topic", config.KafkaOrderChangedTopic)
	return publisher
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
