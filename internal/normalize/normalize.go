// Package normalize converts upstream task records into canonical
// pollution reports.
package normalize

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/model"
	"github.com/mgdov/eco-place/internal/taxonomy"
)

// PlaceholderPhoto is served when a task carries no media.
const PlaceholderPhoto = "/placeholder.svg"

// ErrMissingID marks a task that arrived without an identifier. The
// normalizer never fabricates one; such records are skipped.
var ErrMissingID = fmt.Errorf("task has no id")

// Normalizer builds PollutionReports from RawTasks. Pure except for the
// injected clock.
type Normalizer struct {
	log *zap.Logger
	now func() time.Time
}

// New creates a Normalizer.
func New(log *zap.Logger) *Normalizer {
	return &Normalizer{log: log, now: time.Now}
}

// WithClock overrides the time source. Tests only.
func (n *Normalizer) WithClock(now func() time.Time) *Normalizer {
	n.now = now
	return n
}

// Report normalizes a single task. Returns ErrMissingID when the task
// has no identifier; every other missing field resolves to a default.
func (n *Normalizer) Report(task model.RawTask) (model.PollutionReport, error) {
	if task.ID == "" {
		return model.PollutionReport{}, ErrMissingID
	}

	categoryName := taxonomy.FallbackCategoryName
	if len(task.Categories) > 0 {
		categoryName = task.Categories[0].Name
	}

	photo := PlaceholderPhoto
	if len(task.Media) > 0 {
		photo = task.Media[0]
	}

	coords := model.Coordinates{}
	if task.Location != nil {
		coords = model.Coordinates{
			Latitude:  task.Location.Latitude,
			Longitude: task.Location.Longitude,
		}
	}

	status := model.StatusNew
	if task.IsCompleted {
		status = model.StatusCompleted
	}

	reportedAt := parseTime(task.CreatedAt, n.now())

	var completedAt *time.Time
	if task.IsCompleted {
		t := parseTime(task.UpdatedAt, reportedAt)
		completedAt = &t
	}

	return model.PollutionReport{
		ID:            task.ID,
		PollutionType: taxonomy.PollutionTypeFor(categoryName),
		PhotoURL:      photo,
		Coordinates:   coords,
		Source:        taxonomy.SourceFor(task.From),
		Status:        status,
		Description:   task.Description,
		ReportedAt:    reportedAt,
		ReportedBy:    reporterName(task.Author),
		CompletedAt:   completedAt,
		OriginLabel:   originLabel(task.From),
	}, nil
}

// Reports normalizes a batch, skipping records without an identifier.
// The skip count is returned so callers can account for dropped records.
func (n *Normalizer) Reports(tasks []model.RawTask) ([]model.PollutionReport, int) {
	reports := make([]model.PollutionReport, 0, len(tasks))
	skipped := 0
	for _, task := range tasks {
		report, err := n.Report(task)
		if err != nil {
			skipped++
			n.log.Warn("skipping malformed task", zap.String("title", task.Title), zap.Error(err))
			continue
		}
		reports = append(reports, report)
	}
	return reports, skipped
}

func reporterName(author *model.TaskAuthor) string {
	switch {
	case author == nil:
		return "Unknown"
	case author.Username != "":
		return author.Username
	case author.TelegramID != 0:
		return fmt.Sprintf("User %d", author.TelegramID)
	default:
		return "Unknown"
	}
}

func originLabel(from string) string {
	if from == "" {
		return "Mobile application"
	}
	return from
}

func parseTime(raw string, fallback time.Time) time.Time {
	if raw == "" {
		return fallback
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return fallback
}
