package kafka

import (
	// Go Internal Packages
	"context"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

// Producer publishes receipt share events.
type Producer struct {
	client *kgo.Client
	topic  string
	logger *zap.Logger
}

func NewProducer(brokers []string, topic string, metrics *kprom.Metrics, logger *zap.Logger) (*Producer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.WithHooks(metrics),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, err
	}
	return &Producer{client: client, topic: topic, logger: logger}, nil
}

// Publish writes records synchronously and returns the first failure.
func (p *Producer) Publish(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	out := make([]*kgo.Record, len(records))
	for i, r := range records {
		topic := r.Topic
		if topic == "" {
			topic = p.topic
		}
		out[i] = &kgo.Record{Key: r.Key, Value: r.Value, Topic: topic}
	}
	if err := p.client.ProduceSync(ctx, out...).FirstErr(); err != nil {
		return err
	}
	p.logger.Debug("records produced", zap.Int("count", len(out)), zap.String("topic", p.topic))
	return nil
}

func (p *Producer) Close() {
	p.client.Close()
}
