package queries

import (
	"context"
	"database/sql"

	"tracker/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetUnitTimersQueryHandler retrieves one unit's time records from the
// database, ordered by area.
type GetUnitTimersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitTimersQueryHandler creates a handler for time record queries.
// Requires a GORM database connection for query execution.
func NewGetUnitTimersQueryHandler(db *gorm.DB) GetUnitTimersQueryHandler {
	return GetUnitTimersQueryHandler{db: db}
}

// Handle executes the query to retrieve the unit's time records.
func (h GetUnitTimersQueryHandler) Handle(
	ctx context.Context,
	query GetUnitTimersQuery,
) ([]GetUnitTimersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	timers := make([]GetUnitTimersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			area,
			is_manual,
			started_at,
			stopped_at,
			minutes
		FROM time_records
		WHERE unit_id = ?
		ORDER BY area
	`, query.UnitID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var timerResp GetUnitTimersQueryResponse
		var area string
		var stoppedAt sql.NullTime
		var minutes sql.NullInt64

		err = rows.Scan(
			&area,
			&timerResp.Manual,
			&timerResp.StartedAt,
			&stoppedAt,
			&minutes,
		)
		if err != nil {
			return nil, err
		}

		if timerResp.Area, err = kernel.NewArea(area); err != nil {
			return nil, err
		}
		if stoppedAt.Valid {
			timerResp.StoppedAt = &stoppedAt.Time
		}
		if minutes.Valid {
			n := int(minutes.Int64)
			timerResp.Minutes = &n
		}
		timers = append(timers, timerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return timers, nil
}
