package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/filter"
	"github.com/mgdov/eco-place/internal/metrics"
	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/normalize"
	"github.com/mgdov/eco-place/internal/snapshot"
)

// Gateway is the slice of the upstream client the report service needs.
type Gateway interface {
	Tasks(ctx context.Context, categoryID string) ([]model.RawTask, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CompleteTask(ctx context.Context, id string) error
	UpdateTask(ctx context.Context, id string, isCompleted bool) error
}

// Reports owns the in-memory report set. The set is rebuilt from the
// upstream service on every refresh and on category change; status
// transitions mutate it only after the upstream call succeeds.
type Reports struct {
	gw    Gateway
	snaps snapshot.Store
	norm  *normalize.Normalizer
	sm    model.StatusModel
	log   *zap.Logger
	now   func() time.Time

	mu          sync.Mutex
	reports     []model.PollutionReport
	categoryID  string
	loaded      bool
	stale       bool
	lastErr     error
	refreshedAt time.Time
	gen         uint64
	inflight    map[string]struct{}
}

// NewReports creates the report service.
func NewReports(gw Gateway, snaps snapshot.Store, norm *normalize.Normalizer, sm model.StatusModel, log *zap.Logger) *Reports {
	return &Reports{
		gw:       gw,
		snaps:    snaps,
		norm:     norm,
		sm:       sm,
		log:      log,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// WithClock overrides the time source. Tests only.
func (s *Reports) WithClock(now func() time.Time) *Reports {
	s.now = now
	return s
}

// StatusModel returns the active state-machine variant.
func (s *Reports) StatusModel() model.StatusModel {
	return s.sm
}

// Refresh rebuilds the report set from upstream for the given category.
// Each refresh takes a generation number; a refresh that finishes after
// a newer one started discards its result, so out-of-order completion
// cannot clobber fresher data. A failed refresh falls back to the last
// snapshot and records the error; it never removes confirmed data
// silently.
func (s *Reports) Refresh(ctx context.Context, categoryID string) error {
	s.mu.Lock()
	s.gen++
	myGen := s.gen
	s.mu.Unlock()

	tasks, err := s.gw.Tasks(ctx, categoryID)
	if err != nil && len(tasks) == 0 {
		s.degrade(ctx, myGen, categoryID, err)
		return err
	}
	if err != nil {
		// Body-level error alongside usable data: show what arrived.
		s.log.Warn("refresh completed with upstream warning", zap.Error(err))
	}

	reports, skipped := s.norm.Reports(tasks)
	if skipped > 0 {
		metrics.TasksSkippedTotal.Add(float64(skipped))
	}

	now := s.now()
	s.mu.Lock()
	if s.gen != myGen {
		s.mu.Unlock()
		s.log.Debug("discarding stale refresh", zap.Uint64("generation", myGen))
		return nil
	}
	s.reports = reports
	s.categoryID = categoryID
	s.loaded = true
	s.stale = false
	s.lastErr = nil
	s.refreshedAt = now
	s.mu.Unlock()

	s.saveSnapshot(ctx, reports, categoryID, now)
	return nil
}

// degrade serves the last snapshot (if any) after a failed refresh.
func (s *Reports) degrade(ctx context.Context, myGen uint64, categoryID string, cause error) {
	snap, ok, err := s.snaps.Load(ctx)
	if err != nil {
		s.log.Warn("snapshot load failed", zap.Error(err))
		ok = false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != myGen {
		return
	}
	s.loaded = true
	s.lastErr = cause
	s.categoryID = categoryID
	if ok && snap.CategoryID == categoryID {
		s.reports = snap.Reports
		s.stale = true
		s.refreshedAt = snap.TakenAt
		s.log.Warn("refresh failed, serving snapshot",
			zap.Time("taken_at", snap.TakenAt), zap.Error(cause))
		return
	}
	s.reports = nil
	s.stale = false
	s.log.Warn("refresh failed, no snapshot to serve", zap.Error(cause))
}

// View returns the filtered, ordered report view. A category change (or
// first call) triggers a refresh first, because category filtering runs
// upstream, not locally.
func (s *Reports) View(ctx context.Context, categoryID string, f filter.Filter) model.ReportView {
	s.mu.Lock()
	needRefresh := !s.loaded || s.categoryID != categoryID
	s.mu.Unlock()

	if needRefresh {
		// Failure is reflected in the view, never bubbled to the UI.
		_ = s.Refresh(ctx, categoryID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	visible := filter.Apply(s.reports, f)
	view := model.ReportView{
		Reports:     visible,
		Total:       len(visible),
		CategoryID:  categoryID,
		Stale:       s.stale,
		RefreshedAt: s.refreshedAt,
	}
	if s.lastErr != nil {
		view.RefreshError = s.lastErr.Error()
	}
	return view
}

// Stats counts the loaded (unfiltered) reports by status.
func (s *Reports) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := model.Stats{Total: len(s.reports)}
	for _, r := range s.reports {
		switch r.Status {
		case model.StatusNew:
			st.New++
		case model.StatusInProgress:
			st.InProgress++
		case model.StatusCompleted:
			st.Completed++
		}
	}
	return st
}

// Categories passes the upstream taxonomy through, best-effort empty on
// failure.
func (s *Reports) Categories(ctx context.Context) []model.Category {
	cats, err := s.gw.Categories(ctx)
	if err != nil {
		s.log.Warn("categories fetch failed", zap.Error(err))
	}
	return cats
}

func (s *Reports) saveSnapshot(ctx context.Context, reports []model.PollutionReport, categoryID string, at time.Time) {
	err := s.snaps.Save(ctx, snapshot.Snapshot{
		Reports:    reports,
		CategoryID: categoryID,
		TakenAt:    at,
	})
	if err != nil {
		s.log.Warn("snapshot save failed", zap.Error(err))
	}
}
