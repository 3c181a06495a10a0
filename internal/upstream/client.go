// Package upstream is the HTTP client for the remote task/category
// service that owns report persistence.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/mgdov/eco-place/internal/metrics"
	"github.com/mgdov/eco-place/internal/model"
)

// DefaultTimeout bounds every upstream call.
const DefaultTimeout = 5 * time.Second

// Client talks to the task/category service. Reads are best-effort: a
// transport failure or timeout yields an empty slice plus the error, so
// the dashboard degrades instead of crashing. Writes surface errors.
type Client struct {
	base string
	http *http.Client
	log  *zap.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Tasks fetches raw tasks, optionally narrowed to one category. The
// category filter runs upstream so the dashboard never over-fetches.
// On failure the slice is empty and the error is non-nil; both are
// returned because a partial body can carry an error field alongside
// usable data.
func (c *Client) Tasks(ctx context.Context, categoryID string) ([]model.RawTask, error) {
	u := c.base + "/api/tasks"
	if categoryID != "" {
		u += "?categoryId=" + url.QueryEscape(categoryID)
	}

	body, err := c.get(ctx, "tasks", u)
	if err != nil {
		return nil, err
	}

	var tasks []model.RawTask
	gjson.GetBytes(body, "tasks").ForEach(func(_, raw gjson.Result) bool {
		tasks = append(tasks, decodeTask(raw))
		return true
	})

	if msg := gjson.GetBytes(body, "error").String(); msg != "" {
		c.log.Warn("upstream tasks response carried error", zap.String("error", msg))
		return tasks, fmt.Errorf("upstream: %s", msg)
	}
	return tasks, nil
}

// Categories fetches the category taxonomy for the filter dropdown.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	body, err := c.get(ctx, "categories", c.base+"/api/categories")
	if err != nil {
		return nil, err
	}

	var cats []model.Category
	gjson.GetBytes(body, "categories").ForEach(func(_, raw gjson.Result) bool {
		cats = append(cats, model.Category{
			ID:          raw.Get("_id").String(),
			Name:        raw.Get("name").String(),
			Description: raw.Get("description").String(),
		})
		return true
	})

	if msg := gjson.GetBytes(body, "error").String(); msg != "" {
		c.log.Warn("upstream categories response carried error", zap.String("error", msg))
		return cats, fmt.Errorf("upstream: %s", msg)
	}
	return cats, nil
}

// CompleteTask marks a task done via the dedicated completion endpoint.
func (c *Client) CompleteTask(ctx context.Context, id string) error {
	u := fmt.Sprintf("%s/api/tasks/%s/complete", c.base, url.PathEscape(id))
	return c.patch(ctx, "complete", u, "")
}

// UpdateTask changes the completion flag through the generic field
// update endpoint. Used for every transition except mark-complete.
func (c *Client) UpdateTask(ctx context.Context, id string, isCompleted bool) error {
	body, err := sjson.Set("{}", "isCompleted", isCompleted)
	if err != nil {
		return fmt.Errorf("build update body: %w", err)
	}
	u := fmt.Sprintf("%s/api/tasks/%s", c.base, url.PathEscape(id))
	return c.patch(ctx, "update", u, body)
}

func (c *Client) get(ctx context.Context, op, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("upstream %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("upstream %s: read body: %w", op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return nil, fmt.Errorf("upstream %s: status %d", op, resp.StatusCode)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(op, "ok").Inc()
	return body, nil
}

func (c *Client) patch(ctx context.Context, op, u, body string) error {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("upstream %s: %w", op, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("upstream %s: status %d", op, resp.StatusCode)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

// decodeTask reads one task object field by field. gjson keeps this
// tolerant of the upstream's loose schema, including the misspelled
// "longtitude" key (the correct spelling is also accepted).
func decodeTask(raw gjson.Result) model.RawTask {
	task := model.RawTask{
		ID:          raw.Get("_id").String(),
		Title:       raw.Get("title").String(),
		Description: raw.Get("description").String(),
		From:        raw.Get("from").String(),
		IsCompleted: raw.Get("isCompleted").Bool(),
		IsAccepted:  raw.Get("isAccepted").Bool(),
		CreatedAt:   raw.Get("createdAt").String(),
		UpdatedAt:   raw.Get("updatedAt").String(),
	}

	if loc := raw.Get("location"); loc.Exists() {
		lon := loc.Get("longtitude")
		if !lon.Exists() {
			lon = loc.Get("longitude")
		}
		task.Location = &model.Location{
			Latitude:  loc.Get("latitude").Float(),
			Longitude: lon.Float(),
		}
	}

	raw.Get("categories").ForEach(func(_, cat gjson.Result) bool {
		task.Categories = append(task.Categories, model.TaskCategory{
			ID:   cat.Get("_id").String(),
			Name: cat.Get("name").String(),
		})
		return true
	})

	if author := raw.Get("author"); author.Exists() {
		task.Author = &model.TaskAuthor{
			ID:         author.Get("_id").String(),
			TelegramID: author.Get("telegramId").Int(),
			Username:   author.Get("username").String(),
		}
	}

	raw.Get("media").ForEach(func(_, m gjson.Result) bool {
		task.Media = append(task.Media, m.String())
		return true
	})

	return task
}
