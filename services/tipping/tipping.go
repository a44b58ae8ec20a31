// Package tipping prices the tip screen: preset percentages, custom tips and
// the final charge including the service fee.
package tipping

import (
	// Go Internal Packages
	"fmt"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"github.com/shopspring/decimal"
)

const (
	// DefaultServiceFee is the fixed surcharge added to every transaction.
	DefaultServiceFee models.Cents = 399

	// DefaultMaxTip caps custom tips unless WithMaxTip says otherwise.
	DefaultMaxTip models.Cents = 999999
)

var hundred = decimal.NewFromInt(100)

// Option is one button on the tip screen.
type Option struct {
	Label   string       `json:"label"`
	Percent *int         `json:"percent,omitempty"`
	Amount  models.Cents `json:"amount"`
	Custom  bool         `json:"custom,omitempty"`
}

type Calculator struct {
	fee         models.Cents
	maxTip      models.Cents
	percentages []int
}

func NewCalculator(fee models.Cents, percentages []int) *Calculator {
	return &Calculator{fee: fee, maxTip: DefaultMaxTip, percentages: percentages}
}

// WithMaxTip sets the largest custom tip accepted.
func (c *Calculator) WithMaxTip(max models.Cents) *Calculator {
	if max > 0 {
		c.maxTip = max
	}
	return c
}

func (c *Calculator) ServiceFee() models.Cents {
	return c.fee
}

// TipFor returns round(base * percent / 100) to the cent.
func TipFor(base models.Cents, percent int) models.Cents {
	d := base.Dollars().Mul(decimal.NewFromInt(int64(percent))).Div(hundred)
	return models.FromDollars(d)
}

// Options lists the tip choices for base: no tip, the presets and custom.
func (c *Calculator) Options(base models.Cents) []Option {
	zero := 0
	opts := []Option{{Label: "No Tip", Percent: &zero}}
	for _, p := range c.percentages {
		p := p
		opts = append(opts, Option{Label: fmt.Sprintf("%d%%", p), Percent: &p, Amount: TipFor(base, p)})
	}
	return append(opts, Option{Label: "Custom", Custom: true})
}

// Quote prices a selection. An empty selection means no tip.
func (c *Calculator) Quote(base models.Cents, sel models.TipSelection) (models.Tip, error) {
	if base < 0 {
		return models.Tip{}, errors.E(errors.InvalidAmount, "base amount cannot be negative", nil)
	}
	if sel.Percent != nil && sel.Custom != "" {
		return models.Tip{}, errors.E(errors.Invalid, "choose either a percentage or a custom tip", nil)
	}

	tip := models.Tip{Selection: sel, Base: base, Fee: c.fee}
	switch {
	case sel.Percent != nil:
		p := *sel.Percent
		if p < 0 || p > 100 {
			return models.Tip{}, errors.E(errors.Invalid, fmt.Sprintf("tip percentage %d out of range", p), nil)
		}
		tip.Amount = TipFor(base, p)
		tip.Percent = p
	case sel.Custom != "":
		amount, err := models.ParseCents(sel.Custom)
		if err != nil {
			return models.Tip{}, err
		}
		if amount > c.maxTip {
			return models.Tip{}, errors.E(errors.InvalidAmount, "custom tip cannot exceed "+c.maxTip.String(), nil)
		}
		tip.Amount = amount
		tip.Percent = percentOf(amount, base)
	}
	tip.Total = base + c.fee + tip.Amount
	return tip, nil
}

// percentOf is the whole percentage tip represents of base.
func percentOf(tip, base models.Cents) int {
	if base == 0 || tip == 0 {
		return 0
	}
	d := decimal.NewFromInt(int64(tip)).Mul(hundred).Div(decimal.NewFromInt(int64(base)))
	return int(d.Round(0).IntPart())
}
