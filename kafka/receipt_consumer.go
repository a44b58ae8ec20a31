// Package kafka moves receipt share events between the terminal API and the
// delivery worker.
package kafka

import (
	// Go Internal Packages
	"context"
	"errors"
	"fmt"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ConsumerConfig struct {
	Brokers        []string
	Name           string
	Topic          string
	RecordsPerPoll int
}

// RecordProcessor handles one polled batch. Returning an error leaves the
// batch uncommitted.
type RecordProcessor interface {
	ProcessRecords(ctx context.Context, records []models.Record) error
}

type Consumer struct {
	Client    *kgo.Client
	Config    *ConsumerConfig
	Processor RecordProcessor
	Logger    *zap.Logger
}

// NewReceiptConsumer joins the consumer group of the receipts topic. Call
// Poll to start consuming.
func NewReceiptConsumer(conf *ConsumerConfig, processor RecordProcessor, metrics *kprom.Metrics, logger *zap.Logger) (*Consumer, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...),
		kgo.ConsumerGroup(conf.Name),
		kgo.ConsumeTopics(conf.Topic),
		kgo.WithHooks(metrics),
		kgo.DisableAutoCommit(),
		kgo.BlockRebalanceOnPoll(),
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Consumer{Client: client, Config: conf, Processor: processor, Logger: logger}, nil
}

// Poll consumes until ctx is cancelled or the client is closed.
func (c *Consumer) Poll(ctx context.Context) error {
	defer c.Client.Close()

	consumerName := c.Config.Name
	for {
		if ctx.Err() != nil {
			c.Logger.Warn("polling stopped: context canceled")
			return ctx.Err()
		}

		c.Logger.Debug(fmt.Sprintf("%s: polling for records", consumerName))
		fetches := c.Client.PollRecords(ctx, c.Config.RecordsPerPoll)

		if fetches.IsClientClosed() {
			return errors.New("kafka client closed")
		}
		if errors.Is(fetches.Err0(), context.Canceled) {
			return ctx.Err()
		}
		fetches.EachError(func(topic string, partition int32, err error) {
			c.Logger.Error("fetch failed", zap.String("topic", topic), zap.Int32("partition", partition), zap.Error(err))
		})

		polled := fetches.Records()
		records := make([]models.Record, len(polled))
		for idx, record := range polled {
			records[idx] = models.Record{
				Key:   record.Key,
				Value: record.Value,
				Topic: record.Topic,
			}
		}

		if err := c.Processor.ProcessRecords(ctx, records); err != nil {
			c.Logger.Error("failed to process records", zap.Error(err))
			c.Client.AllowRebalance()
			continue
		}

		if err := c.Client.CommitRecords(ctx, polled...); err != nil {
			c.Logger.Error("failed to commit records", zap.Error(err))
		}
		c.Client.AllowRebalance()
	}
}
