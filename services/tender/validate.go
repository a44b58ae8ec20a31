package tender

import (
	// Go Internal Packages
	"strconv"
	"strings"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	utils "tap-terminal/utils"
)

// Request carries what the operator entered on the tender screen. Only the
// fields of the selected method are read.
type Request struct {
	Method        models.Method `json:"method"`
	CardNumber    string        `json:"card_number,omitempty"`
	Expiry        string        `json:"expiry,omitempty"`
	CVV           string        `json:"cvv,omitempty"`
	AccountNumber string        `json:"account_number,omitempty"`
	RoutingNumber string        `json:"routing_number,omitempty"`
}

// Validate checks the method specific fields of req.
func Validate(req Request) error {
	switch req.Method {
	case models.MethodKeyIn:
		return validateCard(req)
	case models.MethodACH:
		return validateACH(req)
	case models.MethodTap, models.MethodCashApp, models.MethodPayPal, models.MethodVenmo:
		return nil
	default:
		return errors.E(errors.Invalid, "unknown payment method "+strconv.Quote(string(req.Method)), nil)
	}
}

func validateACH(req Request) error {
	if strings.TrimSpace(req.AccountNumber) == "" || strings.TrimSpace(req.RoutingNumber) == "" {
		return errors.E(errors.Invalid, "enter both fields", nil)
	}

	ve := errors.ValidationErrs()
	account := strings.TrimSpace(req.AccountNumber)
	if utils.DigitsOnly(account) != account {
		ve.Add("account_number", "digits only")
	} else if len(account) > 17 {
		ve.Add("account_number", "at most 17 digits")
	}
	routing := strings.TrimSpace(req.RoutingNumber)
	if utils.DigitsOnly(routing) != routing || len(routing) != 9 {
		ve.Add("routing_number", "must be 9 digits")
	}
	if err := ve.Err(); err != nil {
		return errors.ValidationFailedErr(err)
	}
	return nil
}

func validateCard(req Request) error {
	if strings.TrimSpace(req.CardNumber) == "" || strings.TrimSpace(req.Expiry) == "" || strings.TrimSpace(req.CVV) == "" {
		return errors.E(errors.Invalid, "enter card number, expiry and cvv", nil)
	}

	ve := errors.ValidationErrs()
	number := strings.TrimSpace(req.CardNumber)
	digits := utils.DigitsOnly(number)
	if n := len(digits); n < 13 || n > 19 {
		ve.Add("card_number", "must be 13 to 19 digits")
	} else if number != digits && number != utils.GroupDigits(digits) {
		ve.Add("card_number", "must be grouped in blocks of 4")
	}
	if !validExpiry(req.Expiry) {
		ve.Add("expiry", "must be MM/YY")
	}
	cvv := strings.TrimSpace(req.CVV)
	if utils.DigitsOnly(cvv) != cvv || len(cvv) < 3 || len(cvv) > 4 {
		ve.Add("cvv", "must be 3 or 4 digits")
	}
	if err := ve.Err(); err != nil {
		return errors.ValidationFailedErr(err)
	}
	return nil
}

func validExpiry(s string) bool {
	s = strings.TrimSpace(s)
	d := utils.DigitsOnly(s)
	if len(d) != 4 || (s != d && s != utils.FormatExpiry(d)) {
		return false
	}
	month, err := strconv.Atoi(d[:2])
	return err == nil && month >= 1 && month <= 12
}

// DetectBrand guesses the card network from the leading digits. Unknown
// prefixes give an empty brand.
func DetectBrand(number string) models.CardBrand {
	d := utils.DigitsOnly(number)
	switch {
	case strings.HasPrefix(d, "34"), strings.HasPrefix(d, "37"):
		return models.BrandAmex
	case strings.HasPrefix(d, "4"):
		return models.BrandVisa
	case strings.HasPrefix(d, "5"), strings.HasPrefix(d, "2"):
		return models.BrandMastercard
	case strings.HasPrefix(d, "6"):
		return models.BrandDiscover
	default:
		return ""
	}
}
