package models

import "time"

// Stage is a step of the payment flow.
type Stage string

const (
	StageAmountEntry      Stage = "amount_entry"
	StageMethodSelection  Stage = "method_selection"
	StageTenderSimulation Stage = "tender_simulation"
	StageTipping          Stage = "tipping"
	StageConfirmation     Stage = "confirmation"
)

// TenderPhase tracks the simulated processing of a tender.
type TenderPhase string

const (
	PhaseIdle       TenderPhase = "idle"
	PhaseProcessing TenderPhase = "processing"
	PhaseComplete   TenderPhase = "complete"
	PhaseFailed     TenderPhase = "failed"
)

// AmountSource names the attachment that loaded the amount.
type AmountSource string

const (
	SourceKeypad  AmountSource = "keypad"
	SourceOrder   AmountSource = "order"
	SourceCatalog AmountSource = "catalog"
	SourceScan    AmountSource = "scan"
)

// Tender is the state of the selected payment method in a session.
type Tender struct {
	Method   Method      `json:"method,omitempty"`
	Phase    TenderPhase `json:"phase"`
	Card     *Card       `json:"card,omitempty"`
	Error    string      `json:"error,omitempty"`
	Started  time.Time   `json:"started,omitempty"`
	Finished time.Time   `json:"finished,omitempty"`
}

// TipSelection is what the customer chose on the tip screen.
type TipSelection struct {
	Percent *int   `json:"percent,omitempty"`
	Custom  string `json:"custom,omitempty"`
}

// Tip is a computed tip and the resulting charge.
type Tip struct {
	Selection TipSelection `json:"selection"`
	Base      Cents        `json:"base"`
	Fee       Cents        `json:"fee"`
	Amount    Cents        `json:"amount"`
	Percent   int          `json:"percent"`
	Total     Cents        `json:"total"`
}

// Session carries one payment from amount entry to the receipt.
type Session struct {
	ID            string            `json:"id"`
	Site          string            `json:"site,omitempty"`
	Stage         Stage             `json:"stage"`
	Amount        Cents             `json:"amount"`
	Source        AmountSource      `json:"source"`
	Order         *Order            `json:"order,omitempty"`
	Catalog       *CatalogSelection `json:"catalog,omitempty"`
	Memo          string            `json:"memo,omitempty"`
	Scanned       *ScannedDocument  `json:"scanned,omitempty"`
	Tender        Tender            `json:"tender"`
	Tip           *Tip              `json:"tip,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Autopay       *AutopayPlan      `json:"autopay,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}
