package models

// Order is a pending order the operator can look up and charge.
type Order struct {
	ID             string `json:"id"`
	OrderNumber    string `json:"order_number"`
	CustomerNumber string `json:"customer_number"`
	CustomerName   string `json:"customer_name"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Amount         Cents  `json:"amount"`
	Status         string `json:"status"`
	Date           string `json:"date"`
	LastViewed     string `json:"last_viewed,omitempty"`
}

type CatalogCategory string

const (
	CategoryParts    CatalogCategory = "parts"
	CategoryServices CatalogCategory = "services"
)

// CatalogItem is a part or service that can be added to a ticket.
type CatalogItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    Cents           `json:"price"`
	Hours    float64         `json:"hours,omitempty"`
	Group    string          `json:"group"`
	Category CatalogCategory `json:"category"`
}

// Catalog is the list of parts and services offered by the shop.
type Catalog struct {
	Parts     []CatalogItem `json:"parts"`
	Services  []CatalogItem `json:"services"`
	LaborRate Cents         `json:"labor_rate"`
}

type CatalogLine struct {
	Item     CatalogItem `json:"item"`
	Quantity int         `json:"quantity"`
	Total    Cents       `json:"total"`
}

// CatalogSelection is a priced ticket built from the catalog.
type CatalogSelection struct {
	Lines      []CatalogLine `json:"lines"`
	LaborHours float64       `json:"labor_hours"`
	Subtotal   Cents         `json:"subtotal"`
	Labor      Cents         `json:"labor"`
	Total      Cents         `json:"total"`
}

// ScannedDocument is the record extracted from a scanned loan contract.
type ScannedDocument struct {
	CustomerName   string  `json:"customer_name"`
	SSN            string  `json:"ssn,omitempty"`
	VIN            string  `json:"vin"`
	DealerName     string  `json:"dealer_name"`
	LoanDate       string  `json:"loan_date,omitempty"`
	LoanAmount     Cents   `json:"loan_amount,omitempty"`
	DownPayment    Cents   `json:"down_payment"`
	InterestRate   string  `json:"interest_rate,omitempty"`
	LoanTermMonths int     `json:"loan_term,omitempty"`
	MonthlyPayment Cents   `json:"monthly_payment,omitempty"`
	Confidence     float64 `json:"confidence,omitempty"`
}

type AutopayFrequency string

const (
	FrequencyWeekly   AutopayFrequency = "weekly"
	FrequencyBiWeekly AutopayFrequency = "bi-weekly"
	FrequencyMonthly  AutopayFrequency = "monthly"
)

// AutopayPlan is a recurring payment schedule set up after a down payment.
type AutopayPlan struct {
	Frequency       AutopayFrequency `json:"frequency"`
	StartDate       string           `json:"start_date"`
	PaymentAmount   Cents            `json:"payment_amount"`
	NextPaymentDate string           `json:"next_payment_date"`
	Method          Method           `json:"method"`
	CustomerName    string           `json:"customer_name"`
	VIN             string           `json:"vin"`
}
