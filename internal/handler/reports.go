package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mgdov/eco-place/internal/filter"
	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/service"
)

// ReportsHandler serves the report list, forced refresh, and stats.
type ReportsHandler struct {
	Reports *service.Reports
}

// List handles GET /api/reports.
//
// Query: categoryId (narrows the upstream fetch), types and sources
// (CSV, in-memory filters; empty means unconstrained).
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := h.Reports.View(r.Context(), q.Get("categoryId"), filterFromQuery(q.Get("types"), q.Get("sources")))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

// Refresh handles POST /api/reports/refresh (the UI refresh button).
// A failed fetch is not an HTTP error: the view degrades to the last
// snapshot (or empty) and carries stale/refreshError instead.
func (h *ReportsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	categoryID := r.URL.Query().Get("categoryId")
	_ = h.Reports.Refresh(r.Context(), categoryID)

	view := h.Reports.View(r.Context(), categoryID, filter.Filter{})
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(view)
}

// Stats handles GET /api/reports/stats.
func (h *ReportsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.Reports.Stats())
}

func filterFromQuery(types, sources string) filter.Filter {
	var f filter.Filter
	for _, v := range splitCSV(types) {
		f.Types = append(f.Types, model.PollutionType(v))
	}
	for _, v := range splitCSV(sources) {
		f.Sources = append(f.Sources, model.ReportSource(v))
	}
	return f
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
