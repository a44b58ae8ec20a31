// Package keypad implements the amount entry accumulator of the terminal.
package keypad

import (
	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
)

const (
	KeyClear     = "C"
	KeyBackspace = "<"

	// DefaultMax is $9,999.99.
	DefaultMax models.Cents = 999999
)

// Result is the outcome of one key press.
type Result struct {
	Amount      models.Cents `json:"amount"`
	Display     string       `json:"display"`
	MaxExceeded bool         `json:"max_exceeded"`
}

// Keypad shifts digits into a cents accumulator. The zero value is not
// usable, call New.
type Keypad struct {
	cents models.Cents
	max   models.Cents
}

func New(start, max models.Cents) *Keypad {
	if max <= 0 {
		max = DefaultMax
	}
	if start < 0 || start > max {
		start = 0
	}
	return &Keypad{cents: start, max: max}
}

// Press applies a key: a digit, KeyClear or KeyBackspace. A digit that would
// push the amount above the maximum is dropped and flagged in the result.
func (k *Keypad) Press(key string) (Result, error) {
	switch key {
	case KeyClear:
		k.cents = 0
	case KeyBackspace:
		k.cents /= 10
	default:
		if len(key) != 1 || key[0] < '0' || key[0] > '9' {
			return k.result(false), errors.InvalidAmountErr(key, nil)
		}
		next := k.cents*10 + models.Cents(key[0]-'0')
		if next > k.max {
			return k.result(true), nil
		}
		k.cents = next
	}
	return k.result(false), nil
}

// PressAll applies keys in order. MaxExceeded is set if any digit was
// dropped. It stops at the first invalid key.
func (k *Keypad) PressAll(keys []string) (Result, error) {
	exceeded := false
	for _, key := range keys {
		res, err := k.Press(key)
		if err != nil {
			return res, err
		}
		exceeded = exceeded || res.MaxExceeded
	}
	return k.result(exceeded), nil
}

func (k *Keypad) Amount() models.Cents {
	return k.cents
}

// Display is the amount as shown on the terminal, e.g. "1,234.56".
func (k *Keypad) Display() string {
	return k.cents.Plain()
}

func (k *Keypad) result(exceeded bool) Result {
	return Result{Amount: k.cents, Display: k.Display(), MaxExceeded: exceeded}
}
