package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "tap-terminal/errors"
)

var DefaultConfig = []byte(`
application: "tap-terminal"

logger:
  level: "debug"

is_prod_mode: false
demo_mode: true

http:
  address: ":8080"
  read_timeout: "15s"
  write_timeout: "60s"
  request_timeout: "30s"

mongo:
  uri: "mongodb://localhost:27017"
  database: "terminal"

redis:
  uri: "localhost:6379"
  password: ""
  session_ttl: "2h"

kafka:
  brokers:
    - "localhost:9092"
  receipts_topic: "receipt-shares"
  consumer_name: "receipt-worker"
  records_per_poll: 100

terminal:
  merchant_name: "Grapner's Greenhouse"
  service_fee_cents: 399
  max_amount_cents: 999999
  labor_rate_cents: 8500
  tip_percentages: [10, 15, 20]

delays:
  login: "1s"
  order_search: "800ms"
  scan: "2s"
  autopay: "2s"
  refund_processing: "2s"
  refund_complete: "1s"
  processing_timeout: "30s"
  tap:
    processing: "0s"
    complete: "3s"
  keyin:
    processing: "0s"
    complete: "0s"
  ach:
    processing: "2s"
    complete: "0s"
  cashapp:
    processing: "3s"
    complete: "2s"
  paypal:
    processing: "3s"
    complete: "2s"
  venmo:
    processing: "3s"
    complete: "2s"

mock:
  seed: 20240115
`)

type Config struct {
	Application string   `koanf:"application"`
	Logger      Logger   `koanf:"logger"`
	IsProdMode  bool     `koanf:"is_prod_mode"`
	DemoMode    bool     `koanf:"demo_mode"`
	HTTP        HTTP     `koanf:"http"`
	Mongo       Mongo    `koanf:"mongo"`
	Redis       Redis    `koanf:"redis"`
	Kafka       Kafka    `koanf:"kafka"`
	Terminal    Terminal `koanf:"terminal"`
	Delays      Delays   `koanf:"delays"`
	Mock        Mock     `koanf:"mock"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type HTTP struct {
	Address        string        `koanf:"address"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

type Mongo struct {
	URI      string `koanf:"uri"`
	Database string `koanf:"database"`
}

type Redis struct {
	URI        string        `koanf:"uri"`
	Password   string        `koanf:"password"`
	SessionTTL time.Duration `koanf:"session_ttl"`
}

type Kafka struct {
	Brokers        []string `koanf:"brokers"`
	ReceiptsTopic  string   `koanf:"receipts_topic"`
	ConsumerName   string   `koanf:"consumer_name"`
	RecordsPerPoll int      `koanf:"records_per_poll"`
}

type Terminal struct {
	MerchantName    string `koanf:"merchant_name"`
	ServiceFeeCents int64  `koanf:"service_fee_cents"`
	MaxAmountCents  int64  `koanf:"max_amount_cents"`
	LaborRateCents  int64  `koanf:"labor_rate_cents"`
	TipPercentages  []int  `koanf:"tip_percentages"`
}

// Phases holds the two simulated waits of a tender: the processing spinner
// and the "complete" screen shown before moving on.
type Phases struct {
	Processing time.Duration `koanf:"processing"`
	Complete   time.Duration `koanf:"complete"`
}

type Delays struct {
	Login             time.Duration `koanf:"login"`
	OrderSearch       time.Duration `koanf:"order_search"`
	Scan              time.Duration `koanf:"scan"`
	Autopay           time.Duration `koanf:"autopay"`
	RefundProcessing  time.Duration `koanf:"refund_processing"`
	RefundComplete    time.Duration `koanf:"refund_complete"`
	ProcessingTimeout time.Duration `koanf:"processing_timeout"`
	Tap               Phases        `koanf:"tap"`
	KeyIn             Phases        `koanf:"keyin"`
	ACH               Phases        `koanf:"ach"`
	CashApp           Phases        `koanf:"cashapp"`
	PayPal            Phases        `koanf:"paypal"`
	Venmo             Phases        `koanf:"venmo"`
}

type Mock struct {
	Seed uint64 `koanf:"seed"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.HTTP.Address == "" {
		ve.Add("http.address", "cannot be empty")
	}
	if !c.DemoMode {
		if c.Mongo.URI == "" {
			ve.Add("mongo.uri", "cannot be empty")
		}
		if c.Mongo.Database == "" {
			ve.Add("mongo.database", "cannot be empty")
		}
		if c.Redis.URI == "" {
			ve.Add("redis.uri", "cannot be empty")
		}
		if len(c.Kafka.Brokers) == 0 {
			ve.Add("kafka.brokers", "cannot be empty")
		}
		if c.Kafka.ReceiptsTopic == "" {
			ve.Add("kafka.receipts_topic", "cannot be empty")
		}
	}
	if c.Terminal.ServiceFeeCents < 0 {
		ve.Add("terminal.service_fee_cents", "cannot be negative")
	}
	if c.Terminal.MaxAmountCents <= 0 {
		ve.Add("terminal.max_amount_cents", "must be positive")
	}
	for _, p := range c.Terminal.TipPercentages {
		if p <= 0 || p > 100 {
			ve.Add("terminal.tip_percentages", "must be between 1 and 100")
			break
		}
	}
	if c.Delays.ProcessingTimeout <= 0 {
		ve.Add("delays.processing_timeout", "must be positive")
	}

	return ve.Err()
}
