// Package snapshot keeps the last successfully normalized report set so
// a failed refresh can degrade to a stale view instead of an empty one.
package snapshot

import (
	"context"
	"time"

	"github.com/mgdov/eco-place/internal/model"
)

// Snapshot is one saved report set.
type Snapshot struct {
	Reports    []model.PollutionReport `json:"reports"`
	CategoryID string                  `json:"categoryId,omitempty"`
	TakenAt    time.Time               `json:"takenAt"`
}

// Store persists the latest snapshot. Exactly one snapshot exists at a
// time; Save replaces it.
type Store interface {
	Save(ctx context.Context, s Snapshot) error
	Load(ctx context.Context) (Snapshot, bool, error)
}
