package queries

import (
	"context"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingTransfersQueryHandler retrieves the pending transfers aimed at
// one destination area, oldest first.
type GetPendingTransfersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingTransfersQueryHandler creates a handler for pending inbox queries.
// Requires a GORM database connection for query execution.
func NewGetPendingTransfersQueryHandler(db *gorm.DB) GetPendingTransfersQueryHandler {
	return GetPendingTransfersQueryHandler{db: db}
}

// Handle executes the query to retrieve the area's pending transfers.
func (h GetPendingTransfersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingTransfersQuery,
) ([]GetPendingTransfersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transfers := make([]GetPendingTransfersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.unit_id,
			u.folio,
			t.from_area,
			t.pieces,
			t.created_by,
			t.created_at
		FROM transfers t
		JOIN units u ON u.id = t.unit_id
		WHERE t.to_area = ? AND t.status = 'pending'
		ORDER BY t.created_at
	`, query.Area().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var transferResp GetPendingTransfersQueryResponse
		var id, unitID, createdBy uuid.UUID
		var fromArea string

		err = rows.Scan(
			&id,
			&unitID,
			&transferResp.Folio,
			&fromArea,
			&transferResp.Pieces,
			&createdBy,
			&transferResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if transferResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if transferResp.UnitID, err = kernel.UUIDFromBytes(unitID[:]); err != nil {
			return nil, err
		}
		if transferResp.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return nil, err
		}
		if transferResp.FromArea, err = kernel.NewArea(fromArea); err != nil {
			return nil, err
		}
		transfers = append(transfers, transferResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transfers, nil
}
