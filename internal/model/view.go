package model

import "time"

// ReportView is what the presentation layer renders. Stale and
// RefreshError let the UI tell a failed refresh apart from a
// legitimately empty filtered result.
type ReportView struct {
	Reports      []PollutionReport `json:"reports"`
	Total        int               `json:"total"`
	CategoryID   string            `json:"categoryId,omitempty"`
	Stale        bool              `json:"stale"`
	RefreshError string            `json:"refreshError,omitempty"`
	RefreshedAt  time.Time         `json:"refreshedAt"`
}

// Stats are the dashboard overview counters.
type Stats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}
