package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appmw "github.com/mgdov/eco-place/internal/middleware"
	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/service"
)

// StatusHandler advances one report through the status state machine.
type StatusHandler struct {
	Reports *service.Reports
}

type statusRequest struct {
	Status model.ReportStatus `json:"status"`
}

// Update handles PATCH /api/reports/{reportID}/status.
func (h *StatusHandler) Update(w http.ResponseWriter, r *http.Request) {
	reportID := chi.URLParam(r, "reportID")

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		appmw.RespondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON")
		return
	}
	if req.Status == "" {
		appmw.RespondError(w, r, http.StatusBadRequest, "INVALID_REQUEST", "missing status")
		return
	}

	updated, err := h.Reports.Transition(r.Context(), reportID, req.Status)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(updated)
	case errors.Is(err, service.ErrUnknownReport):
		appmw.RespondError(w, r, http.StatusNotFound, "REPORT_NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrReportBusy):
		appmw.RespondError(w, r, http.StatusConflict, "REPORT_BUSY", err.Error())
	case errors.Is(err, service.ErrIllegalTransition):
		appmw.RespondError(w, r, http.StatusConflict, "ILLEGAL_TRANSITION", err.Error())
	default:
		appmw.RespondError(w, r, http.StatusBadGateway, "UPSTREAM_UNAVAILABLE", err.Error())
	}
}
