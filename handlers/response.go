// Package handlers exposes the terminal services over HTTP.
package handlers

import (
	// Go Internal Packages
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	// Local Packages
	errors "tap-terminal/errors"

	// External Packages
	"go.uber.org/zap"
)

// APIResponse is the envelope of every JSON response.
type APIResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func sendSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, APIResponse{Status: "success", Data: data})
}

// StatusFor maps an error kind to an HTTP status.
func StatusFor(err error) int {
	switch errors.KindOf(err) {
	case errors.Invalid, errors.InvalidAmount:
		return http.StatusBadRequest
	case errors.InvalidState, errors.Conflict:
		return http.StatusConflict
	case errors.NotFound:
		return http.StatusNotFound
	case errors.Forbidden:
		return http.StatusForbidden
	case errors.Timeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func sendError(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error) {
	status := StatusFor(err)
	resp := APIResponse{Status: "error", Message: err.Error()}

	var ve *errors.ValidationErrors
	if stderrors.As(err, &ve) {
		resp.Fields = ve.Fields()
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		if status == http.StatusInternalServerError {
			resp.Message = "internal error"
		}
	}
	writeJSON(w, status, resp)
}

// decode reads a JSON body into v. An empty body leaves v untouched.
func decode(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.InvalidBodyErr(err)
}
