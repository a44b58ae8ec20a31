package handlers

import (
	// Go Internal Packages
	"net/http"

	// Local Packages
	models "tap-terminal/models"
	auth "tap-terminal/services/auth"
	settings "tap-terminal/services/settings"

	// External Packages
	"go.uber.org/zap"
)

type AuthHandler struct {
	auth     *auth.Service
	settings *settings.Service
	logger   *zap.Logger
}

func NewAuthHandler(authSvc *auth.Service, settingsSvc *settings.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authSvc, settings: settingsSvc, logger: logger}
}

type loginRequest struct {
	SiteID     string `json:"site_id"`
	AccessCode string `json:"access_code"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	if err := h.auth.Login(r.Context(), req.SiteID, req.AccessCode); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	current, err := h.settings.Load(r.Context())
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, current)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, nil)
}

func (h *AuthHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.settings.Load(r.Context())
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, current)
}

func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch models.SettingsPatch
	if err := decode(r, &patch); err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	updated, err := h.settings.Update(r.Context(), patch)
	if err != nil {
		sendError(w, h.logger, r, err)
		return
	}
	sendSuccess(w, http.StatusOK, updated)
}
