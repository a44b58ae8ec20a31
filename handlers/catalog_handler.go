package handlers

import (
	// Go Internal Packages
	"net/http"

	// Local Packages
	attachments "tap-terminal/services/attachments"
	dashboard "tap-terminal/services/dashboard"

	// External Packages
	"go.uber.org/zap"
)

// LookupHandler serves the read-only data behind the attachment pickers and
// the home screen.
type LookupHandler struct {
	attachments *attachments.Service
	dashboard   *dashboard.Service
	logger      *zap.Logger
}

func NewLookupHandler(attach *attachments.Service, dash *dashboard.Service, logger *zap.Logger) *LookupHandler {
	return &LookupHandler{attachments: attach, dashboard: dash, logger: logger}
}

func (h *LookupHandler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.attachments.SearchOrders(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, orders)
}

func (h *LookupHandler) RecentOrders(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, http.StatusOK, h.attachments.RecentOrders())
}

func (h *LookupHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, http.StatusOK, h.attachments.Catalog())
}

func (h *LookupHandler) Scan(w http.ResponseWriter, r *http.Request) {
	doc, err := h.attachments.Scan(r.Context())
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, doc)
}

func (h *LookupHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	tr, err := dashboard.ParseRange(r.URL.Query().Get("range"))
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	d, err := h.dashboard.Get(tr)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, d)
}
