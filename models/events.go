package models

import "time"

// Record is a raw message read from the broker.
type Record struct {
	Key   []byte
	Value []byte
	Topic string
}

// ReceiptShare asks the delivery worker to send a receipt to a customer.
type ReceiptShare struct {
	ShareID       string    `json:"share_id" bson:"_id"`
	TransactionID string    `json:"transaction_id" bson:"transaction_id"`
	Destination   string    `json:"destination" bson:"destination"`
	Channel       string    `json:"channel" bson:"channel"`
	Receipt       Receipt   `json:"receipt" bson:"receipt"`
	RequestedAt   time.Time `json:"requested_at" bson:"requested_at"`
	DeliveredAt   time.Time `json:"delivered_at,omitempty" bson:"delivered_at,omitempty"`
}

// Receipt is the formatted confirmation shown to the customer.
type Receipt struct {
	TransactionID string `json:"transaction_id" bson:"transaction_id"`
	Merchant      string `json:"merchant" bson:"merchant"`
	Amount        string `json:"amount" bson:"amount"`
	Tip           string `json:"tip" bson:"tip"`
	ServiceFee    string `json:"service_fee" bson:"service_fee"`
	Total         string `json:"total" bson:"total"`
	Method        string `json:"method" bson:"method"`
	CardBrand     string `json:"card_brand,omitempty" bson:"card_brand,omitempty"`
	LastFour      string `json:"last_four,omitempty" bson:"last_four,omitempty"`
	Status        Status `json:"status" bson:"status"`
	Date          string `json:"date" bson:"date"`
	Time          string `json:"time" bson:"time"`
}
