package ports

import (
	"context"

	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/kernel"
)

// TimerRepository defines the persistence contract for area-time records.
// The (unit, area) pair is unique: implementations reject a second timer
// with a DuplicateTimeRecordError.
type TimerRepository interface {
	// Add persists a new timer. Fails with a DuplicateTimeRecordError if the
	// (unit, area) pair already has one.
	Add(ctx context.Context, timer *areatime.Timer) error

	// Update persists the stopped state of a timer.
	Update(ctx context.Context, timer *areatime.Timer) error

	// Get retrieves the timer of a unit in one area.
	Get(ctx context.Context, unitID kernel.UUID, area kernel.Area) (*areatime.Timer, error)
}
