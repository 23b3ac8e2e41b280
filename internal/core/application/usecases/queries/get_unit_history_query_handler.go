package queries

import (
	"context"
	"database/sql"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnitHistoryQueryHandler retrieves one unit's audit events from the
// database, oldest first.
type GetUnitHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitHistoryQueryHandler creates a handler for unit history queries.
// Requires a GORM database connection for query execution.
func NewGetUnitHistoryQueryHandler(db *gorm.DB) GetUnitHistoryQueryHandler {
	return GetUnitHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the unit's audit trail.
func (h GetUnitHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetUnitHistoryQuery,
) ([]GetUnitHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetUnitHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			action,
			description,
			actor,
			from_area,
			to_area,
			pieces,
			occurred_at
		FROM history_events
		WHERE unit_id = ?
		ORDER BY occurred_at, id
	`, query.UnitID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetUnitHistoryQueryResponse
		var id, actor uuid.UUID
		var fromArea, toArea sql.NullString
		var pieces sql.NullInt64

		err = rows.Scan(
			&id,
			&event.Action,
			&event.Description,
			&actor,
			&fromArea,
			&toArea,
			&pieces,
			&event.OccurredAt,
		)
		if err != nil {
			return nil, err
		}

		if event.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if event.Actor, err = kernel.UUIDFromBytes(actor[:]); err != nil {
			return nil, err
		}
		if event.FromArea, err = nullableArea(fromArea); err != nil {
			return nil, err
		}
		if event.ToArea, err = nullableArea(toArea); err != nil {
			return nil, err
		}
		if pieces.Valid {
			n := int(pieces.Int64)
			event.Pieces = &n
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func nullableArea(value sql.NullString) (*kernel.Area, error) {
	if !value.Valid {
		return nil, nil
	}
	area, err := kernel.NewArea(value.String)
	if err != nil {
		return nil, err
	}
	return &area, nil
}
