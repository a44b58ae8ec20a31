package main

import (
	// Go Internal Packages
	"context"

	// Local Packages
	config "tap-terminal/config"
	handlers "tap-terminal/handlers"
	kafka "tap-terminal/kafka"
	models "tap-terminal/models"
	memory "tap-terminal/repositories/memory"
	mongodb "tap-terminal/repositories/mongodb"
	redis "tap-terminal/repositories/redis"
	router "tap-terminal/router"
	attachments "tap-terminal/services/attachments"
	auth "tap-terminal/services/auth"
	dashboard "tap-terminal/services/dashboard"
	history "tap-terminal/services/history"
	mockdata "tap-terminal/services/mockdata"
	payments "tap-terminal/services/payments"
	processors "tap-terminal/services/processors"
	receipts "tap-terminal/services/receipts"
	settings "tap-terminal/services/settings"
	tender "tap-terminal/services/tender"
	tipping "tap-terminal/services/tipping"

	// External Packages
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type backends struct {
	settings     settings.Store
	sessions     payments.SessionRepository
	transactions history.Repository
	publisher    receipts.Publisher
	dlq          receipts.DeadLetter
	closers      []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// connectBackends dials redis, mongo and kafka, or builds in-memory stand-ins
// in demo mode.
func connectBackends(ctx context.Context, c config.Config, metrics *kprom.Metrics, logger *zap.Logger) (*backends, error) {
	if c.DemoMode {
		dlq := memory.NewDeadLetterQueue()
		worker := processors.NewReceiptProcessor(logger.Named("receipt-worker"), memory.NewReceiptsRepository(), dlq)
		return &backends{
			settings:     memory.NewSettingsRepository(),
			sessions:     memory.NewSessionsRepository(),
			transactions: memory.NewTransactionsRepository(),
			publisher:    kafka.NewLoopback(worker),
			dlq:          dlq,
		}, nil
	}

	b := &backends{}
	redisClient, err := redis.Connect(ctx, c.Redis.URI, c.Redis.Password)
	if err != nil {
		return nil, err
	}
	b.closers = append(b.closers, func() { _ = redisClient.Close() })

	mongoClient, err := mongodb.Connect(ctx, c.Mongo.URI, c.Application)
	if err != nil {
		b.close()
		return nil, err
	}
	b.closers = append(b.closers, func() { _ = mongoClient.Disconnect(context.Background()) })

	producer, err := kafka.NewProducer(c.Kafka.Brokers, c.Kafka.ReceiptsTopic, metrics, logger)
	if err != nil {
		b.close()
		return nil, err
	}
	b.closers = append(b.closers, producer.Close)

	b.settings = redis.NewSettingsRepository(redisClient)
	b.sessions = redis.NewSessionsRepository(redisClient, c.Redis.SessionTTL)
	b.dlq = redis.NewDeadLetterQueue(redisClient, logger)
	b.transactions = mongodb.NewTransactionsRepository(mongoClient, c.Mongo.Database)
	b.publisher = producer
	return b, nil
}

func buildHandlers(c config.Config, b *backends, logger *zap.Logger) router.Handlers {
	data := mockdata.NewRandom(c.Mock.Seed, models.Cents(c.Terminal.LaborRateCents))

	settingsSvc := settings.NewService(b.settings, logger)
	historySvc := history.NewService(b.transactions, data, c.Delays, logger)
	attachSvc := attachments.NewService(data, c.Delays, logger)
	receiptSvc := receipts.NewService(historySvc, b.publisher, b.dlq, c.Terminal.MerchantName, c.Kafka.ReceiptsTopic, logger)

	orch := payments.NewOrchestrator(
		b.sessions,
		settingsSvc,
		historySvc,
		tender.NewSimulator(c.Delays, data, logger),
		tipping.NewCalculator(models.Cents(c.Terminal.ServiceFeeCents), c.Terminal.TipPercentages).WithMaxTip(models.Cents(c.Terminal.MaxAmountCents)),
		attachSvc,
		payments.Options{
			MaxAmount:    models.Cents(c.Terminal.MaxAmountCents),
			AutopayDelay: c.Delays.Autopay,
		},
		logger,
	)

	return router.Handlers{
		Auth:         handlers.NewAuthHandler(auth.NewService(settingsSvc, c.Delays.Login, logger), settingsSvc, logger),
		Lookup:       handlers.NewLookupHandler(attachSvc, dashboard.NewService(data), logger),
		Sessions:     handlers.NewSessionsHandler(orch, receiptSvc, logger),
		Transactions: handlers.NewTransactionsHandler(historySvc, receiptSvc, logger),
	}
}
