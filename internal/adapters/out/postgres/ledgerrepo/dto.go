// Package ledgerrepo provides data transfer objects and mapping functions
// for the piece ledger. One row per (unit, area) with custody; zero rows are
// deleted rather than stored, so the table only ever contains live custody.
package ledgerrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// RecordDTO represents one piece ledger row.
type RecordDTO struct {
	UnitID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Area      string    `gorm:"type:varchar(32);primaryKey"`
	Pieces    int       `gorm:"type:int;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for ledger rows.
func (RecordDTO) TableName() string {
	return "piece_records"
}

// fromDomain converts a ledger record to its database representation.
func fromDomain(record *ledger.Record) RecordDTO {
	return RecordDTO{
		UnitID:    record.UnitID().Bytes(),
		Area:      record.Area().String(),
		Pieces:    record.Pieces(),
		UpdatedAt: record.UpdatedAt(),
	}
}

// toDomain reconstructs a ledger record from its database row.
func toDomain(dto RecordDTO) (*ledger.Record, error) {
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	area, err := kernel.NewArea(dto.Area)
	if err != nil {
		return nil, err
	}
	return ledger.NewRecord(unitID, area, dto.Pieces, dto.UpdatedAt)
}
