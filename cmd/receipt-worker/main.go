package main

import (
	// Go Internal Packages
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Local Packages
	config "tap-terminal/config"
	kafka "tap-terminal/kafka"
	mongodb "tap-terminal/repositories/mongodb"
	redis "tap-terminal/repositories/redis"
	processors "tap-terminal/services/processors"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

func main() {
	configPath := kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()
	metricsAddr := kingpin.Flag("metrics-address", "Address serving /metrics").Default(":9102").String()
	kingpin.Parse()

	k, appKonf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// The worker always talks to real backends.
	appKonf.DemoMode = false
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if !appKonf.IsProdMode {
		k.Print()
	}

	logger, err := config.NewLogger(appKonf)
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	logger = logger.Named("receipt-worker")
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Mongo Connection
	mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI, appKonf.Application)
	if err != nil {
		logger.Fatal("cannot create mongo client", zap.Error(err))
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	// Redis Connection
	redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
	if err != nil {
		logger.Fatal("cannot create redis client", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	deliveries := mongodb.NewReceiptsRepository(mongoClient, appKonf.Mongo.Database)
	dlQueue := redis.NewDeadLetterQueue(redisClient, logger)
	processor := processors.NewReceiptProcessor(logger, deliveries, dlQueue)
	if parked, err := dlQueue.Len(ctx); err != nil {
		logger.Warn("cannot read dead-letter queue length", zap.Error(err))
	} else if parked > 0 {
		logger.Warn("receipts waiting in dead-letter queue", zap.Int64("count", parked))
	}

	metrics := kprom.NewMetrics("receipts")
	go func() {
		if err := http.ListenAndServe(*metricsAddr, metrics.Handler()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	conf := &kafka.ConsumerConfig{
		Brokers:        appKonf.Kafka.Brokers,
		Name:           appKonf.Kafka.ConsumerName,
		Topic:          appKonf.Kafka.ReceiptsTopic,
		RecordsPerPoll: appKonf.Kafka.RecordsPerPoll,
	}
	consumer, err := kafka.NewReceiptConsumer(conf, processor, metrics, logger)
	if err != nil {
		logger.Fatal("cannot create receipts consumer", zap.Error(err))
	}

	if err := consumer.Poll(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("cannot poll records from topic", zap.Error(err))
	}
}
