package models

import "time"

// Method is the tender used to settle a payment.
type Method string

const (
	MethodTap     Method = "tap"
	MethodKeyIn   Method = "keyin"
	MethodACH     Method = "ach"
	MethodCashApp Method = "cashapp"
	MethodPayPal  Method = "paypal"
	MethodVenmo   Method = "venmo"
)

// Methods lists the tenders in the order the method screen shows them.
var Methods = []Method{MethodTap, MethodKeyIn, MethodACH, MethodCashApp, MethodPayPal, MethodVenmo}

// Valid reports whether m is a known tender.
func (m Method) Valid() bool {
	for _, known := range Methods {
		if m == known {
			return true
		}
	}
	return false
}

// Label is the display name of the tender.
func (m Method) Label() string {
	switch m {
	case MethodTap:
		return "Tap to Pay"
	case MethodKeyIn:
		return "Card (Keyed)"
	case MethodACH:
		return "ACH Transfer"
	case MethodCashApp:
		return "Cash App Pay"
	case MethodPayPal:
		return "PayPal"
	case MethodVenmo:
		return "Venmo"
	default:
		return string(m)
	}
}

// IsCard reports whether the tender settles against a card.
func (m Method) IsCard() bool {
	return m == MethodTap || m == MethodKeyIn
}

type Status string

const (
	StatusComplete Status = "Complete"
	StatusDeclined Status = "Declined"
	StatusRefunded Status = "Refunded"
)

type CardBrand string

const (
	BrandVisa       CardBrand = "Visa"
	BrandMastercard CardBrand = "Mastercard"
	BrandAmex       CardBrand = "American Express"
	BrandDiscover   CardBrand = "Discover"
)

var CardBrands = []CardBrand{BrandVisa, BrandMastercard, BrandAmex, BrandDiscover}

// Card is the cosmetic card detail shown on receipts.
type Card struct {
	Brand    CardBrand `json:"brand" bson:"brand"`
	LastFour string    `json:"last_four" bson:"last_four"`
}

// Transaction is a settled (or declined / refunded) payment.
type Transaction struct {
	ID        string    `json:"transaction_id" bson:"_id"`
	Site      string    `json:"site,omitempty" bson:"site,omitempty"`
	Amount    Cents     `json:"amount" bson:"amount"`
	Tip       Cents     `json:"tip" bson:"tip"`
	Fee       Cents     `json:"fee" bson:"fee"`
	Total     Cents     `json:"total" bson:"total"`
	Method    Method    `json:"method" bson:"method"`
	Card      Card      `json:"card" bson:"card"`
	Status    Status    `json:"status" bson:"status"`
	Memo      string    `json:"memo,omitempty" bson:"memo,omitempty"`
	OrderRef  string    `json:"order_ref,omitempty" bson:"order_ref,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
	Mock      bool      `json:"mock,omitempty" bson:"-"`
}
