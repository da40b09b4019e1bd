package cmd

import (
	"log/slog"
	"strconv"
	"time"

	"tailoring/internal/adapters/out/kafka"
	"tailoring/internal/adapters/out/postgres"
	"tailoring/internal/core/application/usecases/commands"
	"tailoring/internal/core/application/usecases/queries"
	"tailoring/internal/core/domain/services"
	"tailoring/internal/core/ports"
	"tailoring/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	eventProducer        *kafka.Producer
	depositConfirmStrict bool
	stalePlacedAfter     time.Duration
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:               gormDB,
		uowFactory:           *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:               logger,
		depositConfirmStrict: parseBoolOrDefault(configs.DepositConfirmStrict, false),
		stalePlacedAfter:     parseMinutesOrDefault(configs.StalePlacedAfterMin, 24*time.Hour),
	}

	if configs.KafkaHost != "" && configs.KafkaOrderChangedTopic != "" {
		root.eventProducer = kafka.NewProducer(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	}

	return root
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	if c.eventProducer == nil {
		return nil
	}
	return c.eventProducer.Close()
}

// eventPublisher returns the wired publisher, or nil when Kafka is not
// configured. Command handlers treat a nil publisher as "events disabled".
func (c *CompositionRoot) eventPublisher() ports.OrderEventPublisher {
	if c.eventProducer == nil {
		return nil
	}
	return c.eventProducer
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateConfirmDepositCommandHandler() commands.ConfirmDepositCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDepositCommandHandler(f, c.depositConfirmStrict, c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.eventPublisher(), c.logger)
}

func (c *CompositionRoot) CreateRegisterTailorCommandHandler() commands.RegisterTailorCommandHandler {
	var f commands.TailorUoWFactory = FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequesterOrdersQueryHandler() queries.GetRequesterOrdersQueryHandler {
	return queries.NewGetRequesterOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTailorOrdersQueryHandler() queries.GetTailorOrdersQueryHandler {
	return queries.NewGetTailorOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindNearbyTailorsQueryHandler() queries.FindNearbyTailorsQueryHandler {
	// A unit of work that is never begun binds its repositories straight
	// to the connection pool, which is what a read-only source needs.
	source := c.uowFactory.Create().TailorRepository()
	return queries.NewFindNearbyTailorsQueryHandler(source, services.DefaultRadiusPolicy())
}

func (c *CompositionRoot) CreateListStalePlacedOrdersQueryHandler() queries.ListStalePlacedOrdersQueryHandler {
	return queries.NewListStalePlacedOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListStalePlacedOrdersQueryHandler(), c.stalePlacedAfter, c.logger)
}

func parseBoolOrDefault(s string, fallback bool) bool {
	if s == "" {
		return fallback
	}
	value, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return value
}

func parseMinutesOrDefault(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	minutes, err := strconv.Atoi(s)
	if err != nil || minutes <= 0 {
		return fallback
	}
	return time.Duration(minutes) * time.Minute
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}

