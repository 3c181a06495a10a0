package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mgdov/eco-place/internal/i18n"
	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/service"
)

// LabelsHandler serves the localized label bundle for the UI.
type LabelsHandler struct {
	Catalog *i18n.Catalog
	Reports *service.Reports
}

type labelsResponse struct {
	i18n.Bundle
	StatusModel model.StatusModel `json:"statusModel"`
}

// Get handles GET /api/labels?lang=. An unknown or missing lang falls
// back to the configured default. The response also carries the active
// status model so the UI renders the matching set of status controls.
func (h *LabelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp := labelsResponse{
		Bundle:      h.Catalog.For(r.URL.Query().Get("lang")),
		StatusModel: h.Reports.StatusModel(),
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
