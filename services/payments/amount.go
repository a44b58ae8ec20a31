package payments

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	attachments "tap-terminal/services/attachments"
	keypad "tap-terminal/services/keypad"
)

func requireStage(s *models.Session, op string, stage models.Stage) error {
	if s.Stage != stage {
		return errors.TransitionErr(op, string(s.Stage))
	}
	return nil
}

// PressKey feeds one key to the amount accumulator.
func (o *Orchestrator) PressKey(ctx context.Context, id, key string) (models.Session, keypad.Result, error) {
	return o.PressKeys(ctx, id, []string{key})
}

// PressKeys feeds keys in order as one update. An invalid key rejects the
// whole batch.
func (o *Orchestrator) PressKeys(ctx context.Context, id string, keys []string) (models.Session, keypad.Result, error) {
	var res keypad.Result
	s, err := o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "enter an amount", models.StageAmountEntry); err != nil {
			return err
		}
		pad := keypad.New(s.Amount, o.opts.MaxAmount)
		var err error
		if res, err = pad.PressAll(keys); err != nil {
			return err
		}
		if pad.Amount() == s.Amount {
			return errUnchanged
		}
		s.Amount = pad.Amount()
		return nil
	})
	return s, res, err
}

// SetAmount replaces the accumulator with a typed amount such as "45.99".
func (o *Orchestrator) SetAmount(ctx context.Context, id, amount string) (models.Session, error) {
	cents, err := models.ParseCents(amount)
	if err != nil {
		return models.Session{}, err
	}
	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "enter an amount", models.StageAmountEntry); err != nil {
			return err
		}
		if cents > o.opts.MaxAmount {
			return errors.E(errors.InvalidAmount, "amount above "+o.opts.MaxAmount.String(), nil)
		}
		s.Amount = cents
		return nil
	})
}

func (o *Orchestrator) allowed(ctx context.Context, kind attachments.Kind) error {
	settings, err := o.settings.Load(ctx)
	if err != nil {
		return err
	}
	return attachments.Allowed(settings, kind)
}

// loadSource makes source the only amount source and loads its amount.
func (o *Orchestrator) loadSource(s *models.Session, source models.AmountSource, amount models.Cents) error {
	if amount < 0 || amount > o.opts.MaxAmount {
		return errors.E(errors.InvalidAmount, "attached amount "+amount.String()+" is out of range", nil)
	}
	s.Order, s.Catalog, s.Scanned = nil, nil, nil
	s.Source = source
	s.Amount = amount
	return nil
}

// AttachOrder links a pending order and charges its amount.
func (o *Orchestrator) AttachOrder(ctx context.Context, id, orderID string) (models.Session, error) {
	if err := o.allowed(ctx, attachments.KindOrder); err != nil {
		return models.Session{}, err
	}
	order, err := o.attachments.Order(orderID)
	if err != nil {
		return models.Session{}, err
	}
	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "attach an order", models.StageAmountEntry); err != nil {
			return err
		}
		if err := o.loadSource(s, models.SourceOrder, order.Amount); err != nil {
			return err
		}
		s.Order = &order
		return nil
	})
}

// AttachCatalog prices a ticket and charges its total.
func (o *Orchestrator) AttachCatalog(ctx context.Context, id string, lines []attachments.LineRequest, laborHours float64) (models.Session, error) {
	if err := o.allowed(ctx, attachments.KindCatalog); err != nil {
		return models.Session{}, err
	}
	sel, err := o.attachments.PriceCatalog(lines, laborHours)
	if err != nil {
		return models.Session{}, err
	}
	if len(sel.Lines) == 0 && sel.Labor == 0 {
		return models.Session{}, errors.E(errors.Invalid, "ticket is empty", nil)
	}
	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "attach a ticket", models.StageAmountEntry); err != nil {
			return err
		}
		if err := o.loadSource(s, models.SourceCatalog, sel.Total); err != nil {
			return err
		}
		s.Catalog = &sel
		return nil
	})
}

// AttachScan attaches a scanned loan contract and charges its down payment.
// A nil doc runs a new scan; a partial doc is completed first.
func (o *Orchestrator) AttachScan(ctx context.Context, id string, doc *models.ScannedDocument) (models.Session, error) {
	if err := o.allowed(ctx, attachments.KindScan); err != nil {
		return models.Session{}, err
	}
	if _, err := o.Get(ctx, id); err != nil {
		return models.Session{}, err
	}

	var scanned models.ScannedDocument
	var err error
	if doc == nil {
		scanned, err = o.attachments.Scan(ctx)
	} else {
		scanned, err = o.attachments.CompleteDocument(*doc)
	}
	if err != nil {
		return models.Session{}, err
	}

	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "attach a document", models.StageAmountEntry); err != nil {
			return err
		}
		if err := o.loadSource(s, models.SourceScan, scanned.DownPayment); err != nil {
			return err
		}
		s.Scanned = &scanned
		return nil
	})
}

// SetMemo annotates the payment. It does not touch the amount.
func (o *Orchestrator) SetMemo(ctx context.Context, id, text string) (models.Session, error) {
	if err := o.allowed(ctx, attachments.KindMemo); err != nil {
		return models.Session{}, err
	}
	memo, err := attachments.Memo(text)
	if err != nil {
		return models.Session{}, err
	}
	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "add a memo", models.StageAmountEntry); err != nil {
			return err
		}
		s.Memo = memo
		return nil
	})
}

// Detach removes an attachment. Removing the amount source keeps the amount
// on the keypad.
func (o *Orchestrator) Detach(ctx context.Context, id string, kind attachments.Kind) (models.Session, error) {
	return o.update(ctx, id, func(s *models.Session) error {
		if err := requireStage(s, "remove an attachment", models.StageAmountEntry); err != nil {
			return err
		}
		switch kind {
		case attachments.KindMemo:
			if s.Memo == "" {
				return errUnchanged
			}
			s.Memo = ""
			return nil
		case attachments.KindOrder:
			if s.Order == nil {
				return errUnchanged
			}
		case attachments.KindCatalog:
			if s.Catalog == nil {
				return errUnchanged
			}
		case attachments.KindScan:
			if s.Scanned == nil {
				return errUnchanged
			}
		default:
			return errors.E(errors.Invalid, "unknown attachment "+string(kind), nil)
		}
		s.Order, s.Catalog, s.Scanned = nil, nil, nil
		s.Source = models.SourceKeypad
		return nil
	})
}

// ConfirmAmount moves on to method selection.
func (o *Orchestrator) ConfirmAmount(ctx context.Context, id string) (models.Session, error) {
	return o.update(ctx, id, func(s *models.Session) error {
		switch s.Stage {
		case models.StageMethodSelection:
			return errUnchanged
		case models.StageAmountEntry:
		default:
			return errors.TransitionErr("confirm the amount", string(s.Stage))
		}
		if s.Amount <= 0 {
			return errors.E(errors.InvalidAmount, "amount must be greater than zero", nil)
		}
		s.Stage = models.StageMethodSelection
		return nil
	})
}

// Back returns to the previous screen. A tender can only be left before it
// starts or after it failed.
func (o *Orchestrator) Back(ctx context.Context, id string) (models.Session, error) {
	return o.update(ctx, id, func(s *models.Session) error {
		switch s.Stage {
		case models.StageMethodSelection:
			s.Stage = models.StageAmountEntry
			return nil
		case models.StageTenderSimulation:
			if s.Tender.Phase != models.PhaseIdle && s.Tender.Phase != models.PhaseFailed {
				return errors.TransitionErr("go back", "tender "+string(s.Tender.Phase))
			}
			s.Stage = models.StageMethodSelection
			s.Tender = models.Tender{Phase: models.PhaseIdle}
			return nil
		default:
			return errors.TransitionErr("go back", string(s.Stage))
		}
	})
}
