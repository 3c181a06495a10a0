package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mgdov/eco-place/internal/i18n"
)

func TestLabelsCarryStatusModel(t *testing.T) {
	h := &LabelsHandler{
		Catalog: i18n.NewCatalog("ru"),
		Reports: newReportsService(&fakeGateway{}),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/labels?lang=en", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Language    i18n.Language `json:"language"`
		StatusModel string        `json:"statusModel"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Language != i18n.LangEN {
		t.Errorf("expected en bundle, got %q", resp.Language)
	}
	if resp.StatusModel != "two" {
		t.Errorf("expected two-state model, got %q", resp.StatusModel)
	}
}

func TestLabelsFallBackToDefaultLang(t *testing.T) {
	h := &LabelsHandler{
		Catalog: i18n.NewCatalog("ru"),
		Reports: newReportsService(&fakeGateway{}),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/labels?lang=fr", nil)
	w := httptest.NewRecorder()
	h.Get(w, req)

	var resp struct {
		Language i18n.Language `json:"language"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Language != i18n.LangRU {
		t.Errorf("expected ru fallback, got %q", resp.Language)
	}
}
