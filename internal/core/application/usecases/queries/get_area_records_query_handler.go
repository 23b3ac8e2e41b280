package queries

import (
	"context"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAreaRecordsQueryHandler retrieves an area's piece ledger rows joined
// with the owning unit's folio.
type GetAreaRecordsQueryHandler struct {
	db *gorm.DB
}

// NewGetAreaRecordsQueryHandler creates a handler for area ledger queries.
// Requires a GORM database connection for query execution.
func NewGetAreaRecordsQueryHandler(db *gorm.DB) GetAreaRecordsQueryHandler {
	return GetAreaRecordsQueryHandler{db: db}
}

// Handle executes the query. The ledger never stores zero rows, so every
// returned row is live custody.
func (h GetAreaRecordsQueryHandler) Handle(
	ctx context.Context,
	query GetAreaRecordsQuery,
) ([]GetAreaRecordsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetAreaRecordsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.unit_id,
			u.folio,
			r.pieces
		FROM piece_records r
		JOIN units u ON u.id = r.unit_id
		WHERE r.area = ?
		ORDER BY u.folio
	`, query.Area().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record GetAreaRecordsQueryResponse
		var unitID uuid.UUID

		if err = rows.Scan(&unitID, &record.Folio, &record.Pieces); err != nil {
			return nil, err
		}

		if record.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
