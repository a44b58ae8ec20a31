package mockdata

import (
	// Go Internal Packages
	"fmt"
	"strings"
	"time"

	// Local Packages
	models "tap-terminal/models"

	// External Packages
	"github.com/shopspring/decimal"
)

var (
	firstNames = []string{"John", "Sarah", "Michael", "Emily", "David", "Jessica", "Robert", "Amanda", "James", "Nicole"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	dealers    = []string{"Premium Auto Sales", "Elite Motors", "Drive Time Auto", "CarMax Express", "AutoNation Plus", "Enterprise Auto", "Hertz Car Sales", "Budget Auto Group"}
	loanTerms  = []int{36, 48, 60, 72}
)

const vinChars = "0123456789ABCDEFGHJKLMNPRSTUVWXYZ"

// LoanDocument fabricates the fields read off a scanned auto loan contract.
func (r *Random) LoanDocument(now time.Time) models.ScannedDocument {
	var vin strings.Builder
	for i := 0; i < 17; i++ {
		vin.WriteByte(vinChars[r.intN(len(vinChars))])
	}

	loan := models.Cents(15000+r.intN(30000)) * 100
	down := downPayment(loan, 0.1+r.float64()*0.1)
	rate := decimal.NewFromFloat(8 + r.float64()*10).StringFixed(2)
	term := loanTerms[r.intN(len(loanTerms))]

	return models.ScannedDocument{
		CustomerName:   firstNames[r.intN(len(firstNames))] + " " + lastNames[r.intN(len(lastNames))],
		SSN:            r.maskedSSN(),
		VIN:            vin.String(),
		DealerName:     dealers[r.intN(len(dealers))],
		LoanDate:       r.recentDate(now),
		LoanAmount:     loan,
		DownPayment:    down,
		InterestRate:   rate,
		LoanTermMonths: term,
		MonthlyPayment: MonthlyPayment(loan, rate, term),
		Confidence:     0.9 + float64(r.intN(10))/100,
	}
}

// CompleteDocument fills the fields a partial scan left empty, keeping the
// ones already present.
func (r *Random) CompleteDocument(doc models.ScannedDocument, now time.Time) models.ScannedDocument {
	if doc.SSN == "" {
		doc.SSN = r.maskedSSN()
	}
	if doc.LoanAmount == 0 {
		down := doc.DownPayment
		if down == 0 {
			down = 300000
		}
		pct := decimal.NewFromFloat(0.1 + r.float64()*0.1)
		doc.LoanAmount = models.Cents(down.Dollars().Div(pct).Floor().IntPart()) * 100
	}
	if doc.InterestRate == "" {
		doc.InterestRate = decimal.NewFromFloat(8 + r.float64()*10).StringFixed(2)
	}
	if doc.LoanTermMonths == 0 {
		doc.LoanTermMonths = loanTerms[r.intN(len(loanTerms))]
	}
	if doc.MonthlyPayment == 0 {
		doc.MonthlyPayment = MonthlyPayment(doc.LoanAmount, doc.InterestRate, doc.LoanTermMonths)
	}
	if doc.LoanDate == "" {
		doc.LoanDate = r.recentDate(now)
	}
	return doc
}

// MonthlyPayment amortizes principal over months at the yearly percentage
// rate apr, e.g. "12.50". An unreadable rate is treated as 12%.
func MonthlyPayment(principal models.Cents, apr string, months int) models.Cents {
	if months <= 0 {
		return 0
	}
	rate, err := decimal.NewFromString(apr)
	if err != nil {
		rate = decimal.NewFromInt(12)
	}
	p := principal.Dollars()
	n := decimal.NewFromInt(int64(months))
	if rate.IsZero() {
		return models.FromDollars(p.Div(n))
	}

	monthly := rate.Div(decimal.NewFromInt(1200))
	growth := decimal.NewFromInt(1)
	onePlus := monthly.Add(decimal.NewFromInt(1))
	for i := 0; i < months; i++ {
		growth = growth.Mul(onePlus)
	}
	payment := p.Mul(monthly).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	return models.FromDollars(payment)
}

func downPayment(loan models.Cents, pct float64) models.Cents {
	d := loan.Dollars().Mul(decimal.NewFromFloat(pct)).Floor()
	return models.Cents(d.IntPart()) * 100
}

func (r *Random) maskedSSN() string {
	return fmt.Sprintf("***-**-%s", fourDigits(r.intN(9000)))
}

func (r *Random) recentDate(now time.Time) string {
	return now.AddDate(0, 0, -r.intN(30)).Format("2006-01-02")
}
