package filter

import (
	"testing"
	"time"

	"github.com/mgdov/eco-place/internal/model"
)

func report(id string, typ model.PollutionType, src model.ReportSource, at time.Time) model.PollutionReport {
	return model.PollutionReport{ID: id, PollutionType: typ, Source: src, ReportedAt: at}
}

func ids(reports []model.PollutionReport) []string {
	out := make([]string, len(reports))
	for i, r := range reports {
		out[i] = r.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyEmptyFilterSortsOnly(t *testing.T) {
	base := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	in := []model.PollutionReport{
		report("old", model.PollutionPlastic, model.SourceMobileApp, base.Add(-time.Hour)),
		report("new", model.PollutionGlass, model.SourceTelegramBot, base.Add(time.Hour)),
		report("mid", model.PollutionOil, model.SourceMobileApp, base),
	}

	got := Apply(in, Filter{})
	if !equal(ids(got), []string{"new", "mid", "old"}) {
		t.Errorf("expected descending time order, got %v", ids(got))
	}
	// Input untouched.
	if in[0].ID != "old" {
		t.Errorf("input slice was mutated: %v", ids(in))
	}
}

func TestEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Error("zero filter must report empty")
	}
	if (Filter{Types: []model.PollutionType{model.PollutionGlass}}).Empty() {
		t.Error("type constraint must not report empty")
	}
	if (Filter{Sources: []model.ReportSource{model.SourceTelegramBot}}).Empty() {
		t.Error("source constraint must not report empty")
	}
}

func TestApplyTypeFilter(t *testing.T) {
	base := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	in := []model.PollutionReport{
		report("a", model.PollutionPlastic, model.SourceMobileApp, base.Add(time.Minute)),
		report("b", model.PollutionGlass, model.SourceMobileApp, base.Add(2*time.Minute)),
		report("c", model.PollutionPlastic, model.SourceTelegramBot, base.Add(3*time.Minute)),
	}

	got := Apply(in, Filter{Types: []model.PollutionType{model.PollutionPlastic}})
	if !equal(ids(got), []string{"c", "a"}) {
		t.Errorf("expected [c a], got %v", ids(got))
	}
}

func TestApplyFiltersComposeWithAND(t *testing.T) {
	base := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	in := []model.PollutionReport{
		report("a", model.PollutionPlastic, model.SourceMobileApp, base),
		report("b", model.PollutionPlastic, model.SourceTelegramBot, base),
		report("c", model.PollutionGlass, model.SourceTelegramBot, base),
	}

	got := Apply(in, Filter{
		Types:   []model.PollutionType{model.PollutionPlastic},
		Sources: []model.ReportSource{model.SourceTelegramBot},
	})
	if !equal(ids(got), []string{"b"}) {
		t.Errorf("expected [b], got %v", ids(got))
	}
}

func TestApplyTieStability(t *testing.T) {
	at := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	in := []model.PollutionReport{
		report("first", model.PollutionOther, model.SourceMobileApp, at),
		report("second", model.PollutionOther, model.SourceMobileApp, at),
		report("third", model.PollutionOther, model.SourceMobileApp, at),
	}

	got := Apply(in, Filter{})
	if !equal(ids(got), []string{"first", "second", "third"}) {
		t.Errorf("ties must keep input order, got %v", ids(got))
	}
}

func TestApplyDeterministic(t *testing.T) {
	base := time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC)
	in := []model.PollutionReport{
		report("a", model.PollutionSeaweed, model.SourceMobileApp, base.Add(time.Second)),
		report("b", model.PollutionSeaweed, model.SourceTelegramBot, base),
	}
	f := Filter{Sources: []model.ReportSource{model.SourceMobileApp, model.SourceTelegramBot}}

	first := Apply(in, f)
	second := Apply(in, f)
	if !equal(ids(first), ids(second)) {
		t.Errorf("same inputs produced different outputs: %v vs %v", ids(first), ids(second))
	}
}
