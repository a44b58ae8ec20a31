// Package processors turns polled broker records into delivered receipts.
package processors

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"time"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"go.uber.org/zap"
)

type DeliveryRepository interface {
	InsertDeliveries(ctx context.Context, shares []models.ReceiptShare) error
}

type DeadLetter interface {
	Send(ctx context.Context, records []models.Record) error
}

type ReceiptProcessor struct {
	Logger     *zap.Logger
	Deliveries DeliveryRepository
	DLQ        DeadLetter
	now        func() time.Time
}

func NewReceiptProcessor(logger *zap.Logger, deliveries DeliveryRepository, dlq DeadLetter) *ReceiptProcessor {
	return &ReceiptProcessor{Logger: logger, Deliveries: deliveries, DLQ: dlq, now: time.Now}
}

// ProcessRecords delivers every share in the batch and logs the deliveries.
// Records that cannot be decoded are parked in the dead-letter queue.
func (p *ReceiptProcessor) ProcessRecords(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	var shares []models.ReceiptShare
	var failed []models.Record
	for _, record := range records {
		var share models.ReceiptShare
		if err := json.Unmarshal(record.Value, &share); err != nil || share.TransactionID == "" {
			p.Logger.Error("failed to unmarshal receipt share", zap.ByteString("key", record.Key), zap.Error(err))
			failed = append(failed, record)
			continue
		}
		shares = append(shares, p.deliver(share))
	}

	if len(failed) > 0 {
		if err := p.DLQ.Send(ctx, failed); err != nil {
			p.Logger.Error("failed to park records", zap.Int("count", len(failed)), zap.Error(err))
		}
	}

	if err := p.Deliveries.InsertDeliveries(ctx, shares); err != nil {
		return fmt.Errorf("failed to insert deliveries: %w", err)
	}
	return nil
}

// deliver sends the receipt. Delivery is simulated by a log line.
func (p *ReceiptProcessor) deliver(share models.ReceiptShare) models.ReceiptShare {
	share.DeliveredAt = p.now()
	p.Logger.Info("receipt sent",
		zap.String("share_id", share.ShareID),
		zap.String("transaction_id", share.TransactionID),
		zap.String("channel", share.Channel),
		zap.String("destination", share.Destination),
		zap.String("total", share.Receipt.Total),
	)
	return share
}
