package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/filter"
	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/normalize"
	"github.com/mgdov/eco-place/internal/snapshot"
)

// stubGateway is a scriptable Gateway.
type stubGateway struct {
	mu sync.Mutex

	tasks    []model.RawTask
	tasksErr error
	catsErr  error

	completeErr error
	updateErr   error

	tasksCalls    []string
	completeCalls []string
	updateCalls   []string

	// When set, Tasks/CompleteTask signal entry and then block until
	// released. Used to exercise in-flight behavior.
	tasksEntered    chan struct{}
	tasksRelease    chan struct{}
	completeEntered chan struct{}
	completeRelease chan struct{}
}

func (g *stubGateway) Tasks(_ context.Context, categoryID string) ([]model.RawTask, error) {
	g.mu.Lock()
	g.tasksCalls = append(g.tasksCalls, categoryID)
	entered, release := g.tasksEntered, g.tasksRelease
	tasks, err := g.tasks, g.tasksErr
	g.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return tasks, err
}

func (g *stubGateway) Categories(context.Context) ([]model.Category, error) {
	if g.catsErr != nil {
		return nil, g.catsErr
	}
	return []model.Category{{ID: "c1", Name: "Пластик"}}, nil
}

func (g *stubGateway) CompleteTask(_ context.Context, id string) error {
	g.mu.Lock()
	g.completeCalls = append(g.completeCalls, id)
	entered, release := g.completeEntered, g.completeRelease
	err := g.completeErr
	g.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if release != nil {
		<-release
	}
	return err
}

func (g *stubGateway) UpdateTask(_ context.Context, id string, isCompleted bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updateCalls = append(g.updateCalls, id)
	return g.updateErr
}

func (g *stubGateway) setTasks(tasks []model.RawTask, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.tasks = tasks
	g.tasksErr = err
}

func newTestService(gw *stubGateway, sm model.StatusModel) *Reports {
	log := zap.NewNop()
	return NewReports(gw, snapshot.NewMemory(), normalize.New(log), sm, log)
}

func rawTask(id string, createdAt string) model.RawTask {
	return model.RawTask{ID: id, CreatedAt: createdAt}
}

func TestRefreshLoadsReports(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks([]model.RawTask{
		rawTask("1", "2025-01-28T10:00:00Z"),
		rawTask("2", "2025-01-28T11:00:00Z"),
	}, nil)
	svc := newTestService(gw, model.StatusModelTwo)

	if err := svc.Refresh(context.Background(), ""); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	view := svc.View(context.Background(), "", filter.Filter{})
	if view.Total != 2 {
		t.Fatalf("expected 2 reports, got %d", view.Total)
	}
	if view.Reports[0].ID != "2" {
		t.Errorf("expected most recent first, got %v", view.Reports[0].ID)
	}
	if view.Stale || view.RefreshError != "" {
		t.Errorf("fresh view must not be stale: %+v", view)
	}
}

func TestViewRefreshesOnCategoryChange(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks([]model.RawTask{rawTask("1", "")}, nil)
	svc := newTestService(gw, model.StatusModelTwo)

	svc.View(context.Background(), "", filter.Filter{})
	svc.View(context.Background(), "", filter.Filter{})
	svc.View(context.Background(), "cat-9", filter.Filter{})

	gw.mu.Lock()
	calls := append([]string(nil), gw.tasksCalls...)
	gw.mu.Unlock()
	if len(calls) != 2 || calls[0] != "" || calls[1] != "cat-9" {
		t.Errorf("expected refetch only on category change, got calls %v", calls)
	}
}

func TestRefreshFailureServesSnapshot(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks([]model.RawTask{rawTask("1", "2025-01-28T10:00:00Z")}, nil)
	svc := newTestService(gw, model.StatusModelTwo)

	if err := svc.Refresh(context.Background(), ""); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	gw.setTasks(nil, errors.New("upstream down"))
	if err := svc.Refresh(context.Background(), ""); err == nil {
		t.Fatal("expected refresh error")
	}

	view := svc.View(context.Background(), "", filter.Filter{})
	if !view.Stale {
		t.Error("expected stale view after failed refresh")
	}
	if view.RefreshError == "" {
		t.Error("expected refresh error recorded in view")
	}
	if view.Total != 1 || view.Reports[0].ID != "1" {
		t.Errorf("expected snapshot reports, got %+v", view.Reports)
	}
}

func TestRefreshFailureWithoutSnapshotIsEmpty(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks(nil, errors.New("upstream down"))
	svc := newTestService(gw, model.StatusModelTwo)

	view := svc.View(context.Background(), "", filter.Filter{})
	if view.Total != 0 {
		t.Errorf("expected empty view, got %d", view.Total)
	}
	if view.Stale {
		t.Error("no snapshot means nothing to be stale")
	}
	if view.RefreshError == "" {
		t.Error("failed refresh must be distinguishable from an empty result")
	}
}

func TestStaleRefreshDiscarded(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks([]model.RawTask{rawTask("old", "")}, nil)
	gw.tasksEntered = make(chan struct{}, 2)
	gw.tasksRelease = make(chan struct{})
	svc := newTestService(gw, model.StatusModelTwo)

	firstDone := make(chan struct{})
	go func() {
		_ = svc.Refresh(context.Background(), "")
		close(firstDone)
	}()
	<-gw.tasksEntered // first refresh is now in flight

	// A newer refresh starts and finishes while the first is stalled.
	release := gw.tasksRelease
	gw.mu.Lock()
	gw.tasks = []model.RawTask{rawTask("new", "")}
	gw.tasksEntered = nil
	gw.tasksRelease = nil
	gw.mu.Unlock()
	if err := svc.Refresh(context.Background(), ""); err != nil {
		t.Fatalf("second refresh: %v", err)
	}

	close(release)
	<-firstDone

	view := svc.View(context.Background(), "", filter.Filter{})
	if view.Total != 1 || view.Reports[0].ID != "new" {
		t.Errorf("stale refresh result must be discarded, got %v", view.Reports)
	}
}

func TestStats(t *testing.T) {
	gw := &stubGateway{}
	gw.setTasks([]model.RawTask{
		{ID: "1"},
		{ID: "2", IsCompleted: true},
		{ID: "3"},
	}, nil)
	svc := newTestService(gw, model.StatusModelTwo)
	_ = svc.Refresh(context.Background(), "")

	st := svc.Stats()
	if st.Total != 3 || st.New != 2 || st.Completed != 1 || st.InProgress != 0 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestCategoriesBestEffort(t *testing.T) {
	gw := &stubGateway{}
	svc := newTestService(gw, model.StatusModelTwo)

	if cats := svc.Categories(context.Background()); len(cats) != 1 {
		t.Errorf("expected 1 category, got %v", cats)
	}

	gw.catsErr = errors.New("down")
	if cats := svc.Categories(context.Background()); len(cats) != 0 {
		t.Errorf("expected empty categories on failure, got %v", cats)
	}
}
