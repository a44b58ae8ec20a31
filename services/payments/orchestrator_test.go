package payments

import (
	// Go Internal Packages
	"context"
	stderrors "errors"
	"testing"
	"time"

	// Local Packages
	config "tap-terminal/config"
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	memory "tap-terminal/repositories/memory"
	attachments "tap-terminal/services/attachments"
	mockdata "tap-terminal/services/mockdata"
	settings "tap-terminal/services/settings"
	tender "tap-terminal/services/tender"
	tipping "tap-terminal/services/tipping"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recorder struct {
	repo *memory.TransactionsRepository
	err  error
}

func (r *recorder) Record(ctx context.Context, tx models.Transaction) error {
	if r.err != nil {
		return r.err
	}
	return r.repo.Save(ctx, tx)
}

type fixture struct {
	orch     *Orchestrator
	settings *settings.Service
	txs      *memory.TransactionsRepository
	rec      *recorder
}

func testDelays() config.Delays {
	quick := config.Phases{Complete: time.Millisecond}
	return config.Delays{
		ProcessingTimeout: time.Second,
		Tap:               quick,
		KeyIn:             quick,
		ACH:               quick,
		CashApp:           quick,
		PayPal:            quick,
		Venmo:             quick,
	}
}

func newFixture(t *testing.T, delays config.Delays) *fixture {
	t.Helper()
	logger := zap.NewNop()
	data := mockdata.NewRandom(11, 8500)
	settingsSvc := settings.NewService(memory.NewSettingsRepository(), logger)
	txs := memory.NewTransactionsRepository()
	rec := &recorder{repo: txs}

	orch := NewOrchestrator(
		memory.NewSessionsRepository(),
		settingsSvc,
		rec,
		tender.NewSimulator(delays, data, logger),
		tipping.NewCalculator(tipping.DefaultServiceFee, []int{10, 15, 20}),
		attachments.NewService(data, config.Delays{}, logger),
		Options{MaxAmount: 999999},
		logger,
	)
	return &fixture{orch: orch, settings: settingsSvc, txs: txs, rec: rec}
}

func (f *fixture) enter(t *testing.T, id string, keys ...string) models.Session {
	t.Helper()
	var s models.Session
	for _, k := range keys {
		var err error
		s, _, err = f.orch.PressKey(context.Background(), id, k)
		require.NoError(t, err)
	}
	return s
}

// toTender runs a session through amount entry and method selection.
func (f *fixture) toTender(t *testing.T, method models.Method, keys ...string) models.Session {
	t.Helper()
	ctx := context.Background()
	s, err := f.orch.Start(ctx)
	require.NoError(t, err)
	f.enter(t, s.ID, keys...)
	_, err = f.orch.ConfirmAmount(ctx, s.ID)
	require.NoError(t, err)
	s, err = f.orch.SelectMethod(ctx, s.ID, method)
	require.NoError(t, err)
	return s
}

func intPtr(v int) *int { return &v }

func TestPaymentFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())

	s := f.toTender(t, models.MethodTap, "1", "0", "0", "0", "0")
	assert.Equal(t, models.StageTenderSimulation, s.Stage)
	assert.Equal(t, models.Cents(10000), s.Amount)

	s, err := f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	assert.Contains(t, []models.TenderPhase{models.PhaseProcessing, models.PhaseComplete}, s.Tender.Phase)

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageTipping, s.Stage)
	assert.Equal(t, models.PhaseComplete, s.Tender.Phase)
	require.NotNil(t, s.Tender.Card)

	opts, err := f.orch.TipOptions(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, opts, 5)

	s, err = f.orch.ApplyTip(ctx, s.ID, models.TipSelection{Percent: intPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmation, s.Stage)
	require.NotNil(t, s.Tip)
	assert.Equal(t, models.Cents(1500), s.Tip.Amount)
	assert.Equal(t, models.Cents(11899), s.Tip.Total)
	assert.Contains(t, s.TransactionID, "TXN-")

	tx, err := f.txs.Get(ctx, s.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(11899), tx.Total)
	assert.Equal(t, models.StatusComplete, tx.Status)
	assert.Equal(t, *s.Tender.Card, tx.Card)

	again, err := f.orch.ApplyTip(ctx, s.ID, models.TipSelection{Percent: intPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, s.TransactionID, again.TransactionID)

	_, err = f.orch.ApplyTip(ctx, s.ID, models.TipSelection{Percent: intPtr(20)})
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	again, err = f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmation, again.Stage)
}

func TestTippingDisabled(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	off := false
	_, err := f.settings.Update(ctx, models.SettingsPatch{TippingEnabled: &off})
	require.NoError(t, err)

	s := f.toTender(t, models.MethodVenmo, "2", "5", "0", "0")
	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{Method: models.MethodVenmo})
	require.NoError(t, err)

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmation, s.Stage)
	assert.Equal(t, models.Cents(0), s.Tip.Amount)
	assert.Equal(t, models.Cents(2500+399), s.Tip.Total)
	assert.Nil(t, s.Tender.Card)
}

func TestSettleFailureAllowsRetry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	off := false
	_, err := f.settings.Update(ctx, models.SettingsPatch{TippingEnabled: &off})
	require.NoError(t, err)
	f.rec.err = stderrors.New("history store down")

	s := f.toTender(t, models.MethodCashApp, "4", "0", "0")
	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageTenderSimulation, s.Stage)
	assert.Equal(t, models.PhaseFailed, s.Tender.Phase)
	assert.Contains(t, s.Tender.Error, "history store down")
	assert.Empty(t, s.TransactionID)

	f.rec.err = nil
	s, err = f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	assert.Contains(t, []models.TenderPhase{models.PhaseProcessing, models.PhaseComplete}, s.Tender.Phase)

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageConfirmation, s.Stage)
	assert.NotEmpty(t, s.TransactionID)
}

func TestSettleFailureAllowsBackAndReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	off := false
	_, err := f.settings.Update(ctx, models.SettingsPatch{TippingEnabled: &off})
	require.NoError(t, err)
	f.rec.err = stderrors.New("history store down")

	s := f.toTender(t, models.MethodVenmo, "1", "0", "0")
	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	_, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)

	back, err := f.orch.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageMethodSelection, back.Stage)

	next, err := f.orch.Reset(ctx, s.ID)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, next.ID)
}

func TestSetAmountRejectsOverflow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	s, err := f.orch.Start(ctx)
	require.NoError(t, err)

	_, err = f.orch.SetAmount(ctx, s.ID, "92233720368547758.08")
	assert.Equal(t, errors.InvalidAmount, errors.KindOf(err))

	s, err = f.orch.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(0), s.Amount)
}

func TestKeyInTender(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())

	s := f.toTender(t, models.MethodKeyIn, "9", "9")
	_, err := f.orch.Simulate(ctx, s.ID, tender.Request{CardNumber: "4242"})
	assert.Equal(t, errors.Invalid, errors.KindOf(err))

	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{Method: models.MethodACH, AccountNumber: "1", RoutingNumber: "021000021"})
	assert.Equal(t, errors.Invalid, errors.KindOf(err))

	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{CardNumber: "4242 4242 4242 4242", Expiry: "12/30", CVV: "123"})
	require.NoError(t, err)
	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.Card{Brand: models.BrandVisa, LastFour: "4242"}, s.Tender.Card)
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())

	_, err := f.orch.Get(ctx, "missing")
	assert.Equal(t, errors.NotFound, errors.KindOf(err))

	s, err := f.orch.Start(ctx)
	require.NoError(t, err)

	_, err = f.orch.ConfirmAmount(ctx, s.ID)
	assert.Equal(t, errors.InvalidAmount, errors.KindOf(err))

	_, err = f.orch.SelectMethod(ctx, s.ID, models.MethodTap)
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	_, err = f.orch.Back(ctx, s.ID)
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	_, err = f.orch.ApplyTip(ctx, s.ID, models.TipSelection{})
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	_, _, err = f.orch.PressKey(ctx, s.ID, "x")
	assert.Equal(t, errors.InvalidAmount, errors.KindOf(err))

	f.enter(t, s.ID, "5")
	s, err = f.orch.ConfirmAmount(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageMethodSelection, s.Stage)

	s, err = f.orch.ConfirmAmount(ctx, s.ID)
	require.NoError(t, err, "confirming twice is a no-op")
	assert.Equal(t, models.StageMethodSelection, s.Stage)

	_, _, err = f.orch.PressKey(ctx, s.ID, "1")
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	_, err = f.orch.SelectMethod(ctx, s.ID, "cash")
	assert.Equal(t, errors.Invalid, errors.KindOf(err))

	s, err = f.orch.SelectMethod(ctx, s.ID, models.MethodACH)
	require.NoError(t, err)
	s, err = f.orch.SelectMethod(ctx, s.ID, models.MethodACH)
	require.NoError(t, err)
	s, err = f.orch.SelectMethod(ctx, s.ID, models.MethodPayPal)
	require.NoError(t, err)
	assert.Equal(t, models.MethodPayPal, s.Tender.Method)

	s, err = f.orch.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageMethodSelection, s.Stage)
	assert.Empty(t, s.Tender.Method)

	s, err = f.orch.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageAmountEntry, s.Stage)
	assert.Equal(t, models.Cents(5), s.Amount)
}

func TestPressKeyMax(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	s, err := f.orch.Start(ctx)
	require.NoError(t, err)

	s = f.enter(t, s.ID, "9", "9", "9", "9", "9", "9")
	assert.Equal(t, models.Cents(999999), s.Amount)

	s, res, err := f.orch.PressKey(ctx, s.ID, "9")
	require.NoError(t, err)
	assert.True(t, res.MaxExceeded)
	assert.Equal(t, "9,999.99", res.Display)
	assert.Equal(t, models.Cents(999999), s.Amount)

	s, err = f.orch.SetAmount(ctx, s.ID, "$1,234.50")
	require.NoError(t, err)
	assert.Equal(t, models.Cents(123450), s.Amount)

	_, err = f.orch.SetAmount(ctx, s.ID, "10000.00")
	assert.Equal(t, errors.InvalidAmount, errors.KindOf(err))
}

func TestAttachments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	s, err := f.orch.Start(ctx)
	require.NoError(t, err)

	s, err = f.orch.AttachOrder(ctx, s.ID, "ORD-002")
	require.NoError(t, err)
	assert.Equal(t, models.SourceOrder, s.Source)
	assert.Equal(t, models.Cents(12750), s.Amount)

	s, err = f.orch.SetMemo(ctx, s.ID, " blue pots ")
	require.NoError(t, err)
	assert.Equal(t, "blue pots", s.Memo)
	require.NotNil(t, s.Order)

	s, err = f.orch.AttachCatalog(ctx, s.ID, []attachments.LineRequest{{ItemID: "S003", Quantity: 2}}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, models.SourceCatalog, s.Source)
	assert.Nil(t, s.Order)
	assert.Equal(t, models.Cents(2*2499+4250), s.Amount)
	assert.Equal(t, "blue pots", s.Memo)

	_, err = f.orch.AttachCatalog(ctx, s.ID, nil, 0)
	assert.Equal(t, errors.Invalid, errors.KindOf(err))

	s, err = f.orch.Detach(ctx, s.ID, attachments.KindCatalog)
	require.NoError(t, err)
	assert.Equal(t, models.SourceKeypad, s.Source)
	assert.Nil(t, s.Catalog)
	assert.Equal(t, models.Cents(2*2499+4250), s.Amount)

	s, err = f.orch.AttachScan(ctx, s.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, s.Scanned)
	assert.Equal(t, s.Scanned.DownPayment, s.Amount)

	off := false
	_, err = f.settings.Update(ctx, models.SettingsPatch{OrderOptionEnabled: &off})
	require.NoError(t, err)
	_, err = f.orch.AttachOrder(ctx, s.ID, "ORD-001")
	assert.Equal(t, errors.Forbidden, errors.KindOf(err))

	_, err = f.orch.AttachCatalog(ctx, s.ID, []attachments.LineRequest{{ItemID: "NOPE", Quantity: 1}}, 0)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))
}

func TestSimulateIdempotent(t *testing.T) {
	ctx := context.Background()
	delays := testDelays()
	delays.CashApp = config.Phases{Processing: 30 * time.Millisecond, Complete: time.Millisecond}
	f := newFixture(t, delays)

	s := f.toTender(t, models.MethodCashApp, "7", "5")
	first, err := f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	second, err := f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	assert.True(t, first.Tender.Started.Equal(second.Tender.Started))
	assert.Equal(t, models.PhaseProcessing, second.Tender.Phase)

	_, err = f.orch.Back(ctx, s.ID)
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))
	_, err = f.orch.Reset(ctx, s.ID)
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageTipping, s.Stage)
}

func TestSimulateTimeout(t *testing.T) {
	ctx := context.Background()
	delays := testDelays()
	delays.ProcessingTimeout = 5 * time.Millisecond
	delays.ACH = config.Phases{Processing: time.Second}
	f := newFixture(t, delays)

	s := f.toTender(t, models.MethodACH, "1", "0", "0")
	_, err := f.orch.Simulate(ctx, s.ID, tender.Request{AccountNumber: "12345678", RoutingNumber: "021000021"})
	require.NoError(t, err)

	s, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageTenderSimulation, s.Stage)
	assert.Equal(t, models.PhaseFailed, s.Tender.Phase)
	assert.Contains(t, s.Tender.Error, "timed out")

	s, err = f.orch.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StageMethodSelection, s.Stage)
}

func TestAutopay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	now := time.Date(2024, time.February, 10, 9, 0, 0, 0, time.UTC)
	f.orch.now = func() time.Time { return now }

	s, err := f.orch.Start(ctx)
	require.NoError(t, err)
	s, err = f.orch.AttachScan(ctx, s.ID, &models.ScannedDocument{
		CustomerName: "Ada Moss", VIN: "1HGCM82633A004352", DownPayment: 300000,
		LoanAmount: 2000000, InterestRate: "6", LoanTermMonths: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Cents(38666), s.Scanned.MonthlyPayment)

	req := AutopayRequest{Frequency: models.FrequencyBiWeekly, AcceptTerms: true}
	_, err = f.orch.Autopay(ctx, s.ID, req)
	assert.Equal(t, errors.InvalidState, errors.KindOf(err))

	_, err = f.orch.ConfirmAmount(ctx, s.ID)
	require.NoError(t, err)
	_, err = f.orch.SelectMethod(ctx, s.ID, models.MethodTap)
	require.NoError(t, err)
	_, err = f.orch.Simulate(ctx, s.ID, tender.Request{})
	require.NoError(t, err)
	_, err = f.orch.Await(ctx, s.ID)
	require.NoError(t, err)
	_, err = f.orch.SkipTip(ctx, s.ID)
	require.NoError(t, err)

	_, err = f.orch.Autopay(ctx, s.ID, AutopayRequest{Frequency: models.FrequencyWeekly})
	assert.Equal(t, errors.Invalid, errors.KindOf(err))

	s, err = f.orch.Autopay(ctx, s.ID, req)
	require.NoError(t, err)
	require.NotNil(t, s.Autopay)
	assert.Equal(t, models.Cents(19333), s.Autopay.PaymentAmount)
	assert.Equal(t, "2024-02-24", s.Autopay.StartDate)
	assert.Equal(t, models.MethodTap, s.Autopay.Method)

	_, err = f.orch.Autopay(ctx, s.ID, req)
	require.NoError(t, err)
	_, err = f.orch.Autopay(ctx, s.ID, AutopayRequest{Frequency: models.FrequencyMonthly, AcceptTerms: true})
	assert.Equal(t, errors.Conflict, errors.KindOf(err))
}

func TestInstallmentFor(t *testing.T) {
	weekly, err := InstallmentFor(38666, models.FrequencyWeekly)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(9667), weekly)

	monthly, err := InstallmentFor(38666, models.FrequencyMonthly)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(38666), monthly)

	_, err = InstallmentFor(38666, "daily")
	assert.Equal(t, errors.Invalid, errors.KindOf(err))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, testDelays())
	s, err := f.orch.Start(ctx)
	require.NoError(t, err)
	f.enter(t, s.ID, "4", "2")

	fresh, err := f.orch.Reset(ctx, s.ID)
	require.NoError(t, err)
	assert.NotEqual(t, s.ID, fresh.ID)
	assert.Equal(t, models.StageAmountEntry, fresh.Stage)
	assert.Zero(t, fresh.Amount)

	_, err = f.orch.Get(ctx, s.ID)
	assert.Equal(t, errors.NotFound, errors.KindOf(err))
}
