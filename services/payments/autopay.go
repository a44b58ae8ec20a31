package payments

import (
	// Go Internal Packages
	"context"
	"strings"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	utils "tap-terminal/utils"

	// External Packages
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AutopayRequest sets up recurring payments for a scanned loan.
type AutopayRequest struct {
	Frequency   models.AutopayFrequency `json:"frequency"`
	StartDate   string                  `json:"start_date,omitempty"`
	AcceptTerms bool                    `json:"accept_terms"`
}

const dateLayout = "2006-01-02"

// InstallmentFor splits a monthly payment by frequency.
func InstallmentFor(monthly models.Cents, f models.AutopayFrequency) (models.Cents, error) {
	var parts int64
	switch f {
	case models.FrequencyWeekly:
		parts = 4
	case models.FrequencyBiWeekly:
		parts = 2
	case models.FrequencyMonthly:
		parts = 1
	default:
		return 0, errors.E(errors.Invalid, "unknown autopay frequency "+string(f), nil)
	}
	return models.FromDollars(monthly.Dollars().Div(decimal.NewFromInt(parts))), nil
}

// NextPaymentDate is one period after from.
func NextPaymentDate(from time.Time, f models.AutopayFrequency) time.Time {
	switch f {
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyBiWeekly:
		return from.AddDate(0, 0, 14)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// Autopay enrolls the customer of the scanned loan in recurring payments
// using the tender of the settled transaction.
func (o *Orchestrator) Autopay(ctx context.Context, id string, req AutopayRequest) (models.Session, error) {
	if !req.AcceptTerms {
		return models.Session{}, errors.E(errors.Invalid, "autopay terms must be accepted", nil)
	}
	if _, err := InstallmentFor(0, req.Frequency); err != nil {
		return models.Session{}, err
	}

	s, err := o.Get(ctx, id)
	if err != nil {
		return models.Session{}, err
	}
	if err := checkAutopay(&s, req); err != nil {
		if err == errUnchanged {
			return s, nil
		}
		return models.Session{}, err
	}

	now := o.now()
	start := NextPaymentDate(now, req.Frequency)
	if strings.TrimSpace(req.StartDate) != "" {
		start, err = time.ParseInLocation(dateLayout, req.StartDate, now.Location())
		if err != nil {
			return models.Session{}, errors.E(errors.Invalid, "start date must be YYYY-MM-DD", err)
		}
		y, m, d := now.Date()
		if start.Before(time.Date(y, m, d, 0, 0, 0, 0, now.Location())) {
			return models.Session{}, errors.E(errors.Invalid, "start date is in the past", nil)
		}
	}

	if err := utils.Sleep(ctx, o.opts.AutopayDelay); err != nil {
		return models.Session{}, err
	}

	return o.update(ctx, id, func(s *models.Session) error {
		if err := checkAutopay(s, req); err != nil {
			return err
		}
		installment, err := InstallmentFor(s.Scanned.MonthlyPayment, req.Frequency)
		if err != nil {
			return err
		}
		s.Autopay = &models.AutopayPlan{
			Frequency:       req.Frequency,
			StartDate:       start.Format(dateLayout),
			PaymentAmount:   installment,
			NextPaymentDate: start.Format(dateLayout),
			Method:          s.Tender.Method,
			CustomerName:    s.Scanned.CustomerName,
			VIN:             s.Scanned.VIN,
		}
		o.logger.Info("autopay enrolled",
			zap.String("session_id", s.ID),
			zap.String("frequency", string(req.Frequency)),
			zap.Stringer("installment", installment),
		)
		return nil
	})
}

func checkAutopay(s *models.Session, req AutopayRequest) error {
	if s.Stage != models.StageConfirmation {
		return errors.TransitionErr("set up autopay", string(s.Stage))
	}
	if s.Scanned == nil {
		return errors.E(errors.InvalidState, "autopay needs a scanned loan document", nil)
	}
	if s.Autopay != nil {
		if s.Autopay.Frequency == req.Frequency {
			return errUnchanged
		}
		return errors.E(errors.Conflict, "autopay is already set up", nil)
	}
	return nil
}
