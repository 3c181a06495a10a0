package model

// StatusModel selects which status state machine is active. Two source
// revisions of the dashboard disagree on whether an "in-progress" state
// exists, so both variants are supported and the choice is configuration.
type StatusModel string

const (
	// StatusModelTwo is new -> completed. Default: the upstream service
	// only carries a completion boolean, so "in-progress" cannot
	// round-trip through it.
	StatusModelTwo StatusModel = "two"
	// StatusModelThree adds the in-progress intermediate state.
	StatusModelThree StatusModel = "three"
)

// Statuses returns the legal statuses for the variant in display order.
func (m StatusModel) Statuses() []ReportStatus {
	if m == StatusModelThree {
		return []ReportStatus{StatusNew, StatusInProgress, StatusCompleted}
	}
	return []ReportStatus{StatusNew, StatusCompleted}
}

// CanTransition reports whether from -> to is a legal user transition.
// Completed is terminal in both variants.
func (m StatusModel) CanTransition(from, to ReportStatus) bool {
	switch {
	case from == StatusCompleted:
		return false
	case to == StatusCompleted:
		return from == StatusNew || (m == StatusModelThree && from == StatusInProgress)
	case to == StatusInProgress:
		return m == StatusModelThree && from == StatusNew
	default:
		return false
	}
}
