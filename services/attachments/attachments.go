// Package attachments resolves what the operator can attach to a payment
// before confirming the amount: a pending order, a catalog ticket, a memo or
// a scanned loan contract.
package attachments

import (
	// Go Internal Packages
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	mockdata "tap-terminal/services/mockdata"
	utils "tap-terminal/utils"

	// External Packages
	"go.uber.org/zap"
)

// Kind names an attachment option on the amount screen.
type Kind string

const (
	KindOrder   Kind = "order"
	KindCatalog Kind = "catalog"
	KindMemo    Kind = "memo"
	KindScan    Kind = "scan"
)

const (
	// MaxMemoLength bounds a memo in runes.
	MaxMemoLength = 280

	// MaxQuantity bounds one catalog line after repeats are summed.
	MaxQuantity = 999
	// MaxLaborHours bounds the labor billed on one ticket.
	MaxLaborHours = 100
)

// Allowed reports whether the settings enable the option.
func Allowed(s models.Settings, kind Kind) error {
	var enabled bool
	switch kind {
	case KindOrder:
		enabled = s.OrderOptionEnabled
	case KindCatalog:
		enabled = s.CatalogOptionEnabled
	case KindMemo:
		enabled = s.MemoEnabled
	case KindScan:
		enabled = s.ScanOptionEnabled
	default:
		return errors.E(errors.Invalid, "unknown attachment "+string(kind), nil)
	}
	if !enabled {
		return errors.DisabledOptionErr(string(kind))
	}
	return nil
}

// LineRequest asks for quantity units of a catalog item.
type LineRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type Service struct {
	data   mockdata.Provider
	delays config.Delays
	logger *zap.Logger
	now    func() time.Time
}

func NewService(data mockdata.Provider, delays config.Delays, logger *zap.Logger) *Service {
	return &Service{data: data, delays: delays, logger: logger, now: time.Now}
}

// SearchOrders matches term against the order number, customer number,
// names and amount. An empty term finds nothing.
func (s *Service) SearchOrders(ctx context.Context, term string) ([]models.Order, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []models.Order{}, nil
	}
	if err := utils.Sleep(ctx, s.delays.OrderSearch); err != nil {
		return nil, err
	}

	out := []models.Order{}
	for _, o := range s.data.Orders() {
		fields := []string{o.OrderNumber, o.CustomerNumber, o.CustomerName, o.FirstName, o.LastName, o.Amount.Dollars().StringFixed(2)}
		for _, f := range fields {
			if utils.Contains(f, term) {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

func (s *Service) RecentOrders() []models.Order {
	return s.data.RecentOrders()
}

func (s *Service) Order(id string) (models.Order, error) {
	for _, o := range s.data.Orders() {
		if strings.EqualFold(o.ID, id) {
			return o, nil
		}
	}
	return models.Order{}, errors.NotFoundErr("order", id)
}

func (s *Service) Catalog() models.Catalog {
	return s.data.Catalog()
}

// PriceCatalog builds a ticket. Lines with a quantity of zero or less are
// dropped and repeated items are summed. Labor is billed in half hours.
func (s *Service) PriceCatalog(lines []LineRequest, laborHours float64) (models.CatalogSelection, error) {
	if laborHours < 0 || math.Mod(laborHours*2, 1) != 0 {
		return models.CatalogSelection{}, errors.E(errors.Invalid, "labor hours must be a non-negative multiple of 0.5", nil)
	}
	if laborHours > MaxLaborHours {
		return models.CatalogSelection{}, errors.E(errors.Invalid, fmt.Sprintf("labor hours cannot exceed %d", MaxLaborHours), nil)
	}

	catalog := s.data.Catalog()
	items := make(map[string]models.CatalogItem, len(catalog.Parts)+len(catalog.Services))
	for _, it := range append(append([]models.CatalogItem{}, catalog.Parts...), catalog.Services...) {
		items[it.ID] = it
	}

	sel := models.CatalogSelection{LaborHours: laborHours}
	index := make(map[string]int)
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		item, ok := items[l.ItemID]
		if !ok {
			return models.CatalogSelection{}, errors.NotFoundErr("catalog item", l.ItemID)
		}
		i, seen := index[item.ID]
		if !seen {
			i = len(sel.Lines)
			index[item.ID] = i
			sel.Lines = append(sel.Lines, models.CatalogLine{Item: item})
		}
		if l.Quantity > MaxQuantity-sel.Lines[i].Quantity {
			return models.CatalogSelection{}, errors.E(errors.Invalid, fmt.Sprintf("quantity of %s cannot exceed %d", item.ID, MaxQuantity), nil)
		}
		sel.Lines[i].Quantity += l.Quantity
		sel.Lines[i].Total = item.Price * models.Cents(sel.Lines[i].Quantity)
	}

	for _, l := range sel.Lines {
		sel.Subtotal += l.Total
	}
	// half hours keep this exact
	sel.Labor = catalog.LaborRate * models.Cents(laborHours*2) / 2
	sel.Total = sel.Subtotal + sel.Labor
	return sel, nil
}

// Memo normalizes a memo.
func Memo(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.EmptyParamErr("memo")
	}
	if len([]rune(text)) > MaxMemoLength {
		ve := errors.ValidationErrs()
		ve.Add("memo", "too long")
		return "", errors.ValidationFailedErr(ve.Err())
	}
	return text, nil
}

// Scan simulates reading a loan contract with the camera.
func (s *Service) Scan(ctx context.Context) (models.ScannedDocument, error) {
	if err := utils.Sleep(ctx, s.delays.Scan); err != nil {
		return models.ScannedDocument{}, err
	}
	doc := s.data.LoanDocument(s.now())
	s.logger.Debug("document scanned", zap.String("vin", doc.VIN), zap.Float64("confidence", doc.Confidence))
	return doc, nil
}

// CompleteDocument fills the fields missing from a partial record.
func (s *Service) CompleteDocument(doc models.ScannedDocument) (models.ScannedDocument, error) {
	if strings.TrimSpace(doc.CustomerName) == "" && strings.TrimSpace(doc.VIN) == "" {
		return models.ScannedDocument{}, errors.E(errors.Invalid, "document needs a customer name or a vin", nil)
	}
	if doc.DownPayment < 0 || doc.LoanAmount < 0 {
		return models.ScannedDocument{}, errors.E(errors.InvalidAmount, "document amounts cannot be negative", nil)
	}
	return s.data.CompleteDocument(doc, s.now()), nil
}
