package model

import "time"

// PollutionType classifies what was found on the shore.
type PollutionType string

const (
	PollutionBioWaste   PollutionType = "bio-waste"
	PollutionPlastic    PollutionType = "plastic"
	PollutionGlass      PollutionType = "glass"
	PollutionOil        PollutionType = "oil"
	PollutionHumanTrash PollutionType = "human-trash"
	PollutionSeaweed    PollutionType = "seaweed"
	PollutionOther      PollutionType = "other"
)

// PollutionTypes lists all types in display order.
var PollutionTypes = []PollutionType{
	PollutionBioWaste,
	PollutionPlastic,
	PollutionGlass,
	PollutionOil,
	PollutionHumanTrash,
	PollutionSeaweed,
	PollutionOther,
}

// ReportSource is the channel a report arrived through.
type ReportSource string

const (
	SourceMobileApp   ReportSource = "mobile-app"
	SourceTelegramBot ReportSource = "telegram-bot"
)

// ReportSources lists all sources in display order.
var ReportSources = []ReportSource{SourceMobileApp, SourceTelegramBot}

// ReportStatus is the cleanup state of a report.
type ReportStatus string

const (
	StatusNew        ReportStatus = "new"
	StatusInProgress ReportStatus = "in-progress"
	StatusCompleted  ReportStatus = "completed"
)

// Coordinates is a WGS84 position. {0,0} means "unknown", not a real
// location; callers must not plot it.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Unknown reports whether the position carries no information.
func (c Coordinates) Unknown() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// PollutionReport is the canonical record of one observed pollution
// incident, rebuilt from the upstream task on every refresh.
type PollutionReport struct {
	ID            string        `json:"id"`
	PollutionType PollutionType `json:"pollutionType"`
	PhotoURL      string        `json:"photoUrl"`
	Coordinates   Coordinates   `json:"coordinates"`
	Source        ReportSource  `json:"source"`
	Status        ReportStatus  `json:"status"`
	Description   string        `json:"description,omitempty"`
	ReportedAt    time.Time     `json:"reportedAt"`
	ReportedBy    string        `json:"reportedBy,omitempty"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	AssignedTo    string        `json:"assignedTo,omitempty"`
	OriginLabel   string        `json:"originLabel,omitempty"`
}
