package cmd

import (
	"log/slog"

	"distribution/internal/adapters/out/notifications"
	"distribution/internal/adapters/out/postgres"
	"distribution/internal/adapters/out/postgres/pricerepo"
	"distribution/internal/adapters/out/redisx"
	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. Optional infrastructure
// degrades gracefully: without Kafka brokers notifications go to the log,
// and without Redis price lookups hit the database directly.
type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	priceRepository ports.PriceRepository
	priceResolver   ports.PriceResolver
	notifier        ports.Notifier

	kafkaNotifier *notifications.KafkaNotifier
	redisClient   *redis.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	priceRepo := pricerepo.NewGormPriceRepository(gormDB)
	root.priceRepository = priceRepo
	root.priceResolver = priceRepo
	if config.RedisAddr != "" {
		root.redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		root.priceResolver = redisx.NewCachedPriceResolver(root.priceResolver, root.redisClient, logger)
	}

	if len(config.KafkaBrokers) > 0 {
		root.kafkaNotifier = notifications.NewKafkaNotifier(config.KafkaBrokers,
			config.KafkaNotificationsTopic, logger)
		root.notifier = root.kafkaNotifier
	} else {
		root.notifier = notifications.NewLogNotifier(logger)
	}

	return root
}

// Close releases connections held by optional infrastructure.
func (c *CompositionRoot) Close() error {
	if c.kafkaNotifier != nil {
		if err := c.kafkaNotifier.Close(); err != nil {
			return err
		}
	}
	if c.redisClient != nil {
		return c.redisClient.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.priceResolver)
}

func (c *CompositionRoot) CreateDecideOrderCommandHandler() commands.DecideOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDecideOrderCommandHandler(f, c.priceResolver)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateCopyShipmentCommandHandler() commands.CopyShipmentCommandHandler {
	return commands.NewCopyShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateInspectShipmentCommandHandler() commands.InspectShipmentCommandHandler {
	return commands.NewInspectShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateReceiveShipmentCommandHandler() commands.ReceiveShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveShipmentCommandHandler(f, c.priceResolver, c.notifier)
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateCreatePriceCommandHandler() commands.CreatePriceCommandHandler {
	return commands.NewCreatePriceCommandHandler(c.priceRepository)
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	return commands.NewMarkOverdueInvoicesCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckShipmentCodeQueryHandler() queries.CheckShipmentCodeQueryHandler {
	return queries.NewCheckShipmentCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPricesQueryHandler() queries.ListPricesQueryHandler {
	return queries.NewListPricesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCreditReportQueryHandler() queries.GetCreditReportQueryHandler {
	return queries.NewGetCreditReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
