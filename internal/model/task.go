package model

// RawTask is the upstream task/category service's shape of a report.
// Almost every field is optional in practice; the normalizer owns the
// default rules. Timestamps stay raw ISO-8601 strings until normalization.
type RawTask struct {
	ID          string
	Title       string
	Description string
	Location    *Location
	Categories  []TaskCategory
	Author      *TaskAuthor
	From        string
	IsCompleted bool
	IsAccepted  bool
	Media       []string
	CreatedAt   string
	UpdatedAt   string
}

// Location is the task's position. The upstream wire format spells the
// longitude key "longtitude"; internal/upstream absorbs that.
type Location struct {
	Latitude  float64
	Longitude float64
}

// TaskCategory is one category reference attached to a task.
type TaskCategory struct {
	ID   string
	Name string
}

// TaskAuthor identifies who filed the task.
type TaskAuthor struct {
	ID         string
	TelegramID int64
	Username   string
}

// Category is an upstream taxonomy tag, used only to populate the
// category filter.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
