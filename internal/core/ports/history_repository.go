package ports

import (
	"context"

	"tracker/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for the append-only
// audit timeline. Events are only ever inserted; reads go through the raw
// SQL query side.
type HistoryRepository interface {
	// Add appends an event to a unit's timeline.
	Add(ctx context.Context, event *history.Event) error
}
