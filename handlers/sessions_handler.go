package handlers

import (
	// Go Internal Packages
	"net/http"
	"strconv"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	attachments "tap-terminal/services/attachments"
	payments "tap-terminal/services/payments"
	receipts "tap-terminal/services/receipts"
	tender "tap-terminal/services/tender"

	// External Packages
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionsHandler struct {
	payments *payments.Orchestrator
	receipts *receipts.Service
	logger   *zap.Logger
}

func NewSessionsHandler(orch *payments.Orchestrator, receiptSvc *receipts.Service, logger *zap.Logger) *SessionsHandler {
	return &SessionsHandler{payments: orch, receipts: receiptSvc, logger: logger}
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "id")
}

// reply writes the session or the error of a session operation.
func (h *SessionsHandler) reply(w http.ResponseWriter, r *http.Request, s models.Session, err error) {
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, s)
}

func (h *SessionsHandler) Start(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.Start(r.Context())
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusCreated, s)
}

func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.Get(r.Context(), sessionID(r))
	h.reply(w, r, s, err)
}

type keypadRequest struct {
	Key    string   `json:"key,omitempty"`
	Keys   []string `json:"keys,omitempty"`
	Amount string   `json:"amount,omitempty"`
}

type keypadResponse struct {
	Session     models.Session `json:"session"`
	Display     string         `json:"display"`
	MaxExceeded bool           `json:"max_exceeded"`
}

// Keypad accepts one key, a list of keys, or a typed amount.
func (h *SessionsHandler) Keypad(w http.ResponseWriter, r *http.Request) {
	var req keypadRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}

	ctx, id := r.Context(), sessionID(r)
	if req.Amount != "" {
		s, err := h.payments.SetAmount(ctx, id, req.Amount)
		if err != nil {
			sendError(w, h.logger, r, err)
			return
		}
		sendSuccess(w, http.StatusOK, keypadResponse{Session: s, Display: s.Amount.Plain()})
		return
	}

	keys := req.Keys
	if req.Key != "" {
		keys = append([]string{req.Key}, keys...)
	}
	if len(keys) == 0 {
		sendError(w, h.logger, r, errors.EmptyParamErr("key"))
		return
	}

	s, res, err := h.payments.PressKeys(ctx, id, keys)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, keypadResponse{Session: s, Display: res.Display, MaxExceeded: res.MaxExceeded})
}

type orderRequest struct {
	OrderID string `json:"order_id"`
}

func (h *SessionsHandler) AttachOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	if req.OrderID == "" {
		sendError(w, h.logger, r, errors.EmptyParamErr("order_id"))
		return
	}
	s, err := h.payments.AttachOrder(r.Context(), sessionID(r), req.OrderID)
	h.reply(w, r, s, err)
}

type catalogRequest struct {
	Lines      []attachments.LineRequest `json:"lines"`
	LaborHours float64                   `json:"labor_hours"`
}

func (h *SessionsHandler) AttachCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	s, err := h.payments.AttachCatalog(r.Context(), sessionID(r), req.Lines, req.LaborHours)
	h.reply(w, r, s, err)
}

type memoRequest struct {
	Memo string `json:"memo"`
}

func (h *SessionsHandler) SetMemo(w http.ResponseWriter, r *http.Request) {
	var req memoRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	s, err := h.payments.SetMemo(r.Context(), sessionID(r), req.Memo)
	h.reply(w, r, s, err)
}

type scanRequest struct {
	Document *models.ScannedDocument `json:"document,omitempty"`
}

// AttachScan runs a new scan, or completes the document sent in the body.
func (h *SessionsHandler) AttachScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	s, err := h.payments.AttachScan(r.Context(), sessionID(r), req.Document)
	h.reply(w, r, s, err)
}

// Detach returns a handler removing the given attachment.
func (h *SessionsHandler) Detach(kind attachments.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := h.payments.Detach(r.Context(), sessionID(r), kind)
		h.reply(w, r, s, err)
	}
}

func (h *SessionsHandler) ConfirmAmount(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.ConfirmAmount(r.Context(), sessionID(r))
	h.reply(w, r, s, err)
}

func (h *SessionsHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.Back(r.Context(), sessionID(r))
	h.reply(w, r, s, err)
}

type methodRequest struct {
	Method models.Method `json:"method"`
}

func (h *SessionsHandler) SelectMethod(w http.ResponseWriter, r *http.Request) {
	var req methodRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	s, err := h.payments.SelectMethod(r.Context(), sessionID(r), req.Method)
	h.reply(w, r, s, err)
}

// Tender starts the tender. With ?wait=true the response is sent once the
// tender has settled.
func (h *SessionsHandler) Tender(w http.ResponseWriter, r *http.Request) {
	var req tender.Request
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}

	ctx, id := r.Context(), sessionID(r)
	s, err := h.payments.Simulate(ctx, id, req)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		s, err = h.payments.Await(ctx, id)
		if err != nil {
			sendError(w, h.logger, r, err)
			return
		}
		sendSuccess(w, http.StatusOK, s)
		return
	}
	sendSuccess(w, http.StatusAccepted, s)
}

func (h *SessionsHandler) TipOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.payments.TipOptions(r.Context(), sessionID(r))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, opts)
}

type tipRequest struct {
	Percent *int   `json:"percent,omitempty"`
	Custom  string `json:"custom,omitempty"`
	Skip    bool   `json:"skip,omitempty"`
}

func (h *SessionsHandler) Tip(w http.ResponseWriter, r *http.Request) {
	var req tipRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	if req.Skip {
		s, err := h.payments.SkipTip(r.Context(), sessionID(r))
		h.reply(w, r, s, err)
		return
	}
	s, err := h.payments.ApplyTip(r.Context(), sessionID(r), models.TipSelection{Percent: req.Percent, Custom: req.Custom})
	h.reply(w, r, s, err)
}

func (h *SessionsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.Reset(r.Context(), sessionID(r))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusCreated, s)
}

func (h *SessionsHandler) Autopay(w http.ResponseWriter, r *http.Request) {
	var req payments.AutopayRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	s, err := h.payments.Autopay(r.Context(), sessionID(r), req)
	h.reply(w, r, s, err)
}

func (h *SessionsHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	s, err := h.payments.Get(r.Context(), sessionID(r))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	if s.TransactionID == "" {
		sendError(w, h.logger, r, errors.TransitionErr("show a receipt", string(s.Stage)))
		return
	}
	receipt, err := h.receipts.Receipt(r.Context(), s.TransactionID)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, receipt)
}
