package payments

import (
	// Go Internal Packages
	"context"
	"reflect"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	tipping "tap-terminal/services/tipping"

	// External Packages
	"go.uber.org/zap"
)

// TipOptions lists the tip buttons for the session amount.
func (o *Orchestrator) TipOptions(ctx context.Context, id string) ([]tipping.Option, error) {
	s, err := o.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return o.tips.Options(s.Amount), nil
}

// ApplyTip prices the chosen tip and settles the transaction. Repeating the
// same selection after confirmation returns the session unchanged.
func (o *Orchestrator) ApplyTip(ctx context.Context, id string, sel models.TipSelection) (models.Session, error) {
	return o.update(ctx, id, func(s *models.Session) error {
		switch s.Stage {
		case models.StageTipping:
		case models.StageConfirmation:
			if s.Tip != nil && sameSelection(s.Tip.Selection, sel) {
				return errUnchanged
			}
			return errors.TransitionErr("change the tip", string(s.Stage))
		default:
			return errors.TransitionErr("add a tip", string(s.Stage))
		}

		tip, err := o.tips.Quote(s.Amount, sel)
		if err != nil {
			return err
		}
		return o.finalize(ctx, s, tip)
	})
}

// SkipTip settles the transaction without a tip.
func (o *Orchestrator) SkipTip(ctx context.Context, id string) (models.Session, error) {
	return o.ApplyTip(ctx, id, models.TipSelection{})
}

func sameSelection(a, b models.TipSelection) bool {
	norm := func(s models.TipSelection) models.TipSelection {
		if s.Percent != nil && *s.Percent == 0 && s.Custom == "" {
			return models.TipSelection{}
		}
		return s
	}
	return reflect.DeepEqual(norm(a), norm(b))
}

// finalize records the transaction and moves the session to confirmation.
func (o *Orchestrator) finalize(ctx context.Context, s *models.Session, tip models.Tip) error {
	now := o.now()
	tx := models.Transaction{
		ID:        newTransactionID(),
		Site:      s.Site,
		Amount:    s.Amount,
		Tip:       tip.Amount,
		Fee:       tip.Fee,
		Total:     tip.Total,
		Method:    s.Tender.Method,
		Status:    models.StatusComplete,
		Memo:      s.Memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.Tender.Card != nil {
		tx.Card = *s.Tender.Card
	}
	if s.Order != nil {
		tx.OrderRef = s.Order.OrderNumber
	}
	if err := o.history.Record(ctx, tx); err != nil {
		return err
	}

	s.Tip = &tip
	s.TransactionID = tx.ID
	s.Stage = models.StageConfirmation
	o.logger.Info("transaction complete",
		zap.String("session_id", s.ID),
		zap.String("transaction_id", tx.ID),
		zap.Stringer("total", tx.Total),
	)
	return nil
}
