package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/logger"
)

// ActionResponse is the envelope every farm action answers with
type ActionResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// HarvestResponse carries the yield of a harvest
type HarvestResponse struct {
	ActionResponse
	Result *domain.HarvestResult `json:"result"`
}

// UpgradeResponse reports the new tile level and what it cost
type UpgradeResponse struct {
	ActionResponse
	Level    int `json:"level"`
	Cost     int `json:"cost"`
	NextCost int `json:"next_cost"`
}

// SellResponse reports the gold credited by selling everything
type SellResponse struct {
	ActionResponse
	TotalCredited int            `json:"total_credited"`
	Sold          map[string]int `json:"sold"`
	Gold          int            `json:"gold"`
}

// LoadResponse reports whether a stored farm was found
type LoadResponse struct {
	ActionResponse
	Found bool `json:"found"`
}

// SeasonResponse is the current season
type SeasonResponse struct {
	Season domain.Season `json:"season"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends an {ok:false, message} response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ActionResponse{OK: false, Message: message})
}

// respondOK sends an {ok:true, message} response
func respondOK(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, ActionResponse{OK: true, Message: message})
}

// mapServiceErrorToUserMessage maps farm errors to an HTTP status and a
// message the player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest, strings.TrimPrefix(err.Error(), domain.ErrMsgInvalidAction+": ")
	case errors.Is(err, domain.ErrCorruptSave):
		return http.StatusBadRequest, ErrMsgCorruptSaveError
	case errors.Is(err, domain.ErrNoSave):
		return http.StatusNotFound, ErrMsgNoSaveError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError logs a failed farm call and answers with the mapped error
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgActionFailed, "action", action, "error", err)
	} else {
		log.Debug(LogMsgActionFailed, "action", action, "error", err)
	}
	respondError(w, status, msg)
}
