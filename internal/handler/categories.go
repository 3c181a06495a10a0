package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/service"
)

// CategoriesHandler serves the category filter options.
type CategoriesHandler struct {
	Reports *service.Reports
}

// List handles GET /api/categories. Upstream failures degrade to an
// empty list; the filter dropdown just renders empty.
func (h *CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	cats := h.Reports.Categories(r.Context())
	if cats == nil {
		cats = []model.Category{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]model.Category{"categories": cats})
}
