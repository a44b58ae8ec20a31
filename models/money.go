package models

import (
	// Go Internal Packages
	"strconv"
	"strings"

	// Local Packages
	errors "tap-terminal/errors"

	// External Packages
	"github.com/shopspring/decimal"
)

// Cents is an amount of US currency in cents.
type Cents int64

// MaxCents is the largest amount ParseCents accepts. It keeps sums of
// amounts, fees and tips far from the int64 limit.
const MaxCents Cents = 99_999_999_999_999

var maxParsed = decimal.NewFromInt(int64(MaxCents))

// String renders the amount as "$1,234.56".
func (c Cents) String() string {
	if c < 0 {
		return "-$" + (-c).Plain()
	}
	return "$" + c.Plain()
}

// Plain renders the amount without the currency sign, e.g. "1,234.56".
func (c Cents) Plain() string {
	neg := c < 0
	if neg {
		c = -c
	}
	whole := strconv.FormatInt(int64(c)/100, 10)
	frac := int64(c) % 100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))
	return b.String()
}

// Dollars returns the amount as a decimal number of dollars.
func (c Cents) Dollars() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// FromDollars converts a dollar amount to cents, rounding half away from zero.
func FromDollars(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// ParseCents reads a non negative dollar string such as "12.34", "$1,234.50"
// or "0" into cents.
func ParseCents(s string) (Cents, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimLeft(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return 0, errors.InvalidAmountErr(s, nil)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, errors.InvalidAmountErr(s, err)
	}
	if d.IsNegative() {
		return 0, errors.E(errors.InvalidAmount, "amount cannot be negative", nil)
	}
	if !d.Equal(d.Round(2)) {
		return 0, errors.E(errors.InvalidAmount, "amount has more than two decimals", nil)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() || cents.GreaterThan(maxParsed) {
		return 0, errors.E(errors.InvalidAmount, "amount is too large", nil)
	}
	return Cents(cents.IntPart()), nil
}
