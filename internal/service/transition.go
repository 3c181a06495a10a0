package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/metrics"
	"github.com/mgdov/eco-place/internal/model"
)

var (
	// ErrUnknownReport means no loaded report has the requested id.
	ErrUnknownReport = errors.New("unknown report")
	// ErrReportBusy means a transition for this report is already in
	// flight; concurrent transitions for one report are rejected.
	ErrReportBusy = errors.New("report transition already in flight")
	// ErrIllegalTransition means the state machine forbids the move.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Transition advances one report's status. The upstream service is the
// source of truth: local state changes only after the remote call is
// acknowledged, so the in-memory set always reflects last-known-confirmed
// server state. On any failure local state is untouched.
func (s *Reports) Transition(ctx context.Context, id string, target model.ReportStatus) (model.PollutionReport, error) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		metrics.TransitionsTotal.WithLabelValues("unknown").Inc()
		return model.PollutionReport{}, ErrUnknownReport
	}
	if _, busy := s.inflight[id]; busy {
		s.mu.Unlock()
		metrics.TransitionsTotal.WithLabelValues("busy").Inc()
		return model.PollutionReport{}, ErrReportBusy
	}
	current := s.reports[idx].Status
	if !s.sm.CanTransition(current, target) {
		s.mu.Unlock()
		metrics.TransitionsTotal.WithLabelValues("illegal").Inc()
		s.log.Warn("illegal status transition ignored",
			zap.String("report_id", id),
			zap.String("from", string(current)),
			zap.String("to", string(target)))
		return model.PollutionReport{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current, target)
	}
	orig := s.reports[idx]
	s.inflight[id] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, id)
		s.mu.Unlock()
	}()

	// Mark-complete has its own endpoint upstream; everything else goes
	// through the generic field update.
	var err error
	if target == model.StatusCompleted {
		err = s.gw.CompleteTask(ctx, id)
	} else {
		err = s.gw.UpdateTask(ctx, id, false)
	}
	if err != nil {
		metrics.TransitionsTotal.WithLabelValues("remote_error").Inc()
		return model.PollutionReport{}, fmt.Errorf("transition report %s: %w", id, err)
	}

	now := s.now()
	s.mu.Lock()
	idx = s.indexOf(id)
	if idx < 0 {
		// A refresh replaced the set while the call was in flight and the
		// report is gone locally. The remote write was still acknowledged,
		// so report it as confirmed rather than failing the caller.
		s.mu.Unlock()
		confirmed := orig
		confirmed.Status = target
		if target == model.StatusCompleted {
			confirmed.CompletedAt = &now
		} else {
			confirmed.CompletedAt = nil
		}
		metrics.TransitionsTotal.WithLabelValues("superseded").Inc()
		s.log.Info("report status updated after refresh dropped it",
			zap.String("report_id", id),
			zap.String("from", string(current)),
			zap.String("to", string(target)))
		return confirmed, nil
	}
	s.reports[idx].Status = target
	if target == model.StatusCompleted {
		s.reports[idx].CompletedAt = &now
	} else {
		s.reports[idx].CompletedAt = nil
	}
	updated := s.reports[idx]
	reports := make([]model.PollutionReport, len(s.reports))
	copy(reports, s.reports)
	categoryID := s.categoryID
	refreshedAt := s.refreshedAt
	s.mu.Unlock()

	s.saveSnapshot(ctx, reports, categoryID, refreshedAt)
	metrics.TransitionsTotal.WithLabelValues("ok").Inc()
	s.log.Info("report status updated",
		zap.String("report_id", id),
		zap.String("from", string(current)),
		zap.String("to", string(target)))
	return updated, nil
}

// indexOf finds a report by id. Caller holds s.mu.
func (s *Reports) indexOf(id string) int {
	for i := range s.reports {
		if s.reports[i].ID == id {
			return i
		}
	}
	return -1
}
