// Package receipts renders the confirmation receipt and hands shared
// receipts to the delivery worker.
package receipts

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"strings"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	utils "tap-terminal/utils"

	// External Packages
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"

	StatusQueued   = "queued"
	StatusDeferred = "deferred"
)

type Publisher interface {
	Publish(ctx context.Context, records []models.Record) error
}

type DeadLetter interface {
	Send(ctx context.Context, records []models.Record) error
}

type TransactionSource interface {
	Get(ctx context.Context, id string) (models.Transaction, error)
}

// ShareResult tells the operator whether the receipt is on its way.
type ShareResult struct {
	ShareID     string `json:"share_id"`
	Destination string `json:"destination"`
	Channel     string `json:"channel"`
	Status      string `json:"status"`
}

type Service struct {
	txs       TransactionSource
	publisher Publisher
	dlq       DeadLetter
	merchant  string
	topic     string
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(txs TransactionSource, publisher Publisher, dlq DeadLetter, merchant, topic string, logger *zap.Logger) *Service {
	return &Service{
		txs:       txs,
		publisher: publisher,
		dlq:       dlq,
		merchant:  merchant,
		topic:     topic,
		logger:    logger,
		now:       time.Now,
	}
}

// Build formats tx for display in the terminal's local time.
func Build(tx models.Transaction, merchant string) models.Receipt {
	created := tx.CreatedAt.Local()
	r := models.Receipt{
		TransactionID: tx.ID,
		Merchant:      merchant,
		Amount:        tx.Amount.String(),
		Tip:           tx.Tip.String(),
		ServiceFee:    tx.Fee.String(),
		Total:         tx.Total.String(),
		Method:        tx.Method.Label(),
		CardBrand:     string(tx.Card.Brand),
		Status:        tx.Status,
		Date:          created.Format("January 2, 2006"),
		Time:          created.Format("3:04 PM"),
	}
	if tx.Card.LastFour != "" {
		r.LastFour = "•••• " + tx.Card.LastFour
	}
	return r
}

func (s *Service) Receipt(ctx context.Context, txID string) (models.Receipt, error) {
	tx, err := s.txs.Get(ctx, txID)
	if err != nil {
		return models.Receipt{}, err
	}
	return Build(tx, s.merchant), nil
}

// ChannelFor picks email for addresses with an "@" and sms for phone numbers.
func ChannelFor(destination string) (string, error) {
	destination = strings.TrimSpace(destination)
	switch {
	case destination == "":
		return "", errors.EmptyParamErr("destination")
	case strings.Contains(destination, "@"):
		at := strings.LastIndex(destination, "@")
		if at == 0 || at == len(destination)-1 || strings.ContainsAny(destination, " \t") {
			return "", errors.E(errors.Invalid, "invalid email address", nil)
		}
		return ChannelEmail, nil
	default:
		digits := utils.DigitsOnly(destination)
		if len(digits) < 10 || len(digits) > 15 || strings.Trim(destination, "0123456789+-() .") != "" {
			return "", errors.E(errors.Invalid, "invalid phone number", nil)
		}
		return ChannelSMS, nil
	}
}

// Share queues the receipt of txID for delivery. When the broker is
// unavailable the event is parked in the dead-letter queue and reported as
// deferred.
func (s *Service) Share(ctx context.Context, txID, destination string) (ShareResult, error) {
	channel, err := ChannelFor(destination)
	if err != nil {
		return ShareResult{}, err
	}
	receipt, err := s.Receipt(ctx, txID)
	if err != nil {
		return ShareResult{}, err
	}

	share := models.ReceiptShare{
		ShareID:       "RCPT-" + ulid.Make().String(),
		TransactionID: txID,
		Destination:   strings.TrimSpace(destination),
		Channel:       channel,
		Receipt:       receipt,
		RequestedAt:   s.now(),
	}
	value, err := json.Marshal(share)
	if err != nil {
		return ShareResult{}, errors.E(errors.Internal, "failed to encode receipt", err)
	}
	records := []models.Record{{Key: []byte(share.ShareID), Value: value, Topic: s.topic}}

	res := ShareResult{ShareID: share.ShareID, Destination: share.Destination, Channel: channel, Status: StatusQueued}
	logger := s.logger.With(zap.String("share_id", share.ShareID), zap.String("transaction_id", txID))

	if err := s.publisher.Publish(ctx, records); err != nil {
		logger.Warn("failed to publish receipt, parking it", zap.Error(err))
		if dlqErr := s.dlq.Send(ctx, records); dlqErr != nil {
			return ShareResult{}, errors.E(errors.Internal, "failed to queue receipt", dlqErr)
		}
		res.Status = StatusDeferred
		return res, nil
	}

	logger.Info("receipt queued", zap.String("channel", channel))
	return res, nil
}
