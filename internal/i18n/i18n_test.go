package i18n

import (
	"testing"

	"github.com/mgdov/eco-place/internal/model"
)

func TestCatalogFallback(t *testing.T) {
	c := NewCatalog(LangEN)

	if got := c.For("").Language; got != LangEN {
		t.Errorf("empty lang must fall back to default, got %q", got)
	}
	if got := c.For("xx").Language; got != LangEN {
		t.Errorf("unknown lang must fall back to default, got %q", got)
	}
	if got := c.For("kk").Language; got != LangKK {
		t.Errorf("expected kk bundle, got %q", got)
	}
}

func TestCatalogUnsupportedDefault(t *testing.T) {
	c := NewCatalog("xx")
	if c.Default() != LangRU {
		t.Errorf("unsupported default must fall back to ru, got %q", c.Default())
	}
}

func TestBundlesComplete(t *testing.T) {
	for _, lang := range Languages {
		b := NewCatalog(lang).For(string(lang))
		for _, pt := range model.PollutionTypes {
			label, ok := b.PollutionTypes[pt]
			if !ok || label.Text == "" || label.Icon == "" {
				t.Errorf("%s: missing pollution label for %q", lang, pt)
			}
		}
		for _, src := range model.ReportSources {
			if label, ok := b.Sources[src]; !ok || label.Text == "" {
				t.Errorf("%s: missing source label for %q", lang, src)
			}
		}
		for _, st := range model.StatusModelThree.Statuses() {
			if b.Statuses[st] == "" {
				t.Errorf("%s: missing status label for %q", lang, st)
			}
		}
		if b.UI["noReportsFound"] == "" || b.UI["takeToWork"] == "" {
			t.Errorf("%s: incomplete UI strings", lang)
		}
	}
}
