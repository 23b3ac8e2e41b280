package queries

import (
	"context"

	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnitsByAreaQueryHandler retrieves the units an area currently holds
// pieces of. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetUnitsByAreaQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitsByAreaQueryHandler creates a handler for area workload queries.
// Requires a GORM database connection for query execution.
func NewGetUnitsByAreaQueryHandler(db *gorm.DB) GetUnitsByAreaQueryHandler {
	return GetUnitsByAreaQueryHandler{db: db}
}

// Handle executes the query. Terminal and soft-deleted units are excluded;
// results are sorted by folio for consistent output.
func (h GetUnitsByAreaQueryHandler) Handle(
	ctx context.Context,
	query GetUnitsByAreaQuery,
) ([]GetUnitsByAreaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	units := make([]GetUnitsByAreaQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.kind,
			u.folio,
			u.total_pieces,
			r.pieces,
			u.status,
			u.created_at
		FROM units u
		JOIN piece_records r ON r.unit_id = u.id
		WHERE r.area = ?
		  AND u.status NOT IN ('completed', 'canceled', 'rejected', 'deleted')
		ORDER BY u.folio
	`, query.Area().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var unitResp GetUnitsByAreaQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&unitResp.Kind,
			&unitResp.Folio,
			&unitResp.TotalPieces,
			&unitResp.HeldPieces,
			&unitResp.Status,
			&unitResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if unitResp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		units = append(units, unitResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return units, nil
}
