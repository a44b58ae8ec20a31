package handlers

import (
	// Go Internal Packages
	"net/http"
	"time"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"
	history "tap-terminal/services/history"
	receipts "tap-terminal/services/receipts"

	// External Packages
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

type TransactionsHandler struct {
	history  *history.Service
	receipts *receipts.Service
	logger   *zap.Logger
	now      func() time.Time
}

func NewTransactionsHandler(historySvc *history.Service, receiptSvc *receipts.Service, logger *zap.Logger) *TransactionsHandler {
	return &TransactionsHandler{history: historySvc, receipts: receiptSvc, logger: logger, now: time.Now}
}

type dayListing struct {
	Date         string               `json:"date"`
	Status       history.Filter       `json:"status"`
	Transactions []models.Transaction `json:"transactions"`
}

// List serves ?date=YYYY-MM-DD (default today) and ?status=.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := h.now()
	if v := q.Get("date"); v != "" {
		parsed, err := time.ParseInLocation(dayLayout, v, day.Location())
		if err != nil {
			sendError(w, h.logger, r, errors.InvalidParamsErr(err))
			return
		}
		day = parsed
	}
	filter, err := history.ParseFilter(q.Get("status"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}

	txs, err := h.history.List(r.Context(), day, filter)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, dayListing{Date: day.Format(dayLayout), Status: filter, Transactions: txs})
}

func (h *TransactionsHandler) Days(w http.ResponseWriter, r *http.Request) {
	days := h.history.DaysAvailable()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(dayLayout)
	}
	sendSuccess(w, http.StatusOK, out)
}

func (h *TransactionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	tx, err := h.history.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, tx)
}

func (h *TransactionsHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.receipts.Receipt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, receipt)
}

type shareRequest struct {
	Destination string `json:"destination"`
}

func (h *TransactionsHandler) ShareReceipt(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	res, err := h.receipts.Share(r.Context(), chi.URLParam(r, "id"), req.Destination)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusAccepted, res)
}

func (h *TransactionsHandler) Refund(w http.ResponseWriter, r *http.Request) {
	tx, err := h.history.Refund(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, tx)
}
