package queries

import (
	"context"
	"database/sql"
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnitQueryHandler retrieves one unit and its piece distribution from the
// database. Uses direct SQL queries for optimal read performance in the CQRS
// pattern.
type GetUnitQueryHandler struct {
	db *gorm.DB
}

// NewGetUnitQueryHandler creates a handler for single-unit queries.
// Requires a GORM database connection for query execution.
func NewGetUnitQueryHandler(db *gorm.DB) GetUnitQueryHandler {
	return GetUnitQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFoundError when no unit with
// the requested identifier exists or it has been soft deleted.
func (h GetUnitQueryHandler) Handle(
	ctx context.Context,
	query GetUnitQuery,
) (GetUnitQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUnitQueryResponse{}, err
	}

	var response GetUnitQueryResponse
	var id, createdBy uuid.UUID
	var currentArea sql.NullString
	var completedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			kind,
			folio,
			total_pieces,
			status,
			current_area,
			created_by,
			created_at,
			completed_at
		FROM units
		WHERE id = ? AND status != 'deleted'
	`, query.UnitID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Kind,
		&response.Folio,
		&response.TotalPieces,
		&response.Status,
		&currentArea,
		&createdBy,
		&response.CreatedAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetUnitQueryResponse{}, errs.NewObjectNotFoundError("unitID", query.UnitID().String())
	}
	if err != nil {
		return GetUnitQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetUnitQueryResponse{}, err
	}
	if response.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
		return GetUnitQueryResponse{}, err
	}
	if currentArea.Valid {
		area, areaErr := kernel.NewArea(currentArea.String)
		if areaErr != nil {
			return GetUnitQueryResponse{}, areaErr
		}
		response.CurrentArea = &area
	}
	if completedAt.Valid {
		response.CompletedAt = &completedAt.Time
	}

	response.Distribution, err = h.loadDistribution(ctx, query.UnitID())
	if err != nil {
		return GetUnitQueryResponse{}, err
	}

	return response, nil
}

func (h GetUnitQueryHandler) loadDistribution(
	ctx context.Context,
	unitID kernel.UUID,
) ([]AreaPiecesResponse, error) {
	records := make([]AreaPiecesResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			area,
			pieces,
			updated_at
		FROM piece_records
		WHERE unit_id = ?
		ORDER BY area
	`, unitID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var record AreaPiecesResponse
		var area string

		if err = rows.Scan(&area, &record.Pieces, &record.UpdatedAt); err != nil {
			return nil, err
		}

		if record.Area, err = kernel.NewArea(area); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
