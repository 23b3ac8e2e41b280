// Package unitrepo provides data transfer objects and mapping functions for
// unit persistence. It implements the repository pattern for the unit
// aggregate, converting between domain entities and database rows.
package unitrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"

	"github.com/google/uuid"
)

// UnitDTO represents the database structure for persisting unit aggregates.
type UnitDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind        string     `gorm:"type:varchar(16);not null"`
	Folio       string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	TotalPieces int        `gorm:"type:int;not null"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	CurrentArea *string    `gorm:"type:varchar(32)"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	CreatedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time `gorm:""`
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time `gorm:""`
}

// TableName specifies the database table name for unit entities.
func (UnitDTO) TableName() string {
	return "units"
}

// fromDomain converts a unit domain aggregate to its database representation.
func fromDomain(aggregate *unit.Unit) UnitDTO {
	dto := UnitDTO{
		ID:          aggregate.ID().Bytes(),
		Kind:        aggregate.Kind().String(),
		Folio:       aggregate.Folio(),
		TotalPieces: aggregate.TotalPieces(),
		Status:      aggregate.Status().String(),
		CreatedBy:   aggregate.CreatedBy().Bytes(),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		ApprovedAt:  aggregate.ApprovedAt(),
	}

	if area := aggregate.CurrentArea(); area != nil {
		s := area.String()
		dto.CurrentArea = &s
	}
	if approvedBy := aggregate.ApprovedBy(); approvedBy != nil {
		id := approvedBy.Bytes()
		dto.ApprovedBy = &id
	}

	return dto
}

// toDomain reconstructs a unit domain aggregate from its database row.
func toDomain(dto UnitDTO) (*unit.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	kind, err := unit.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}
	status, err := unit.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentArea *kernel.Area
	if dto.CurrentArea != nil {
		area, areaErr := kernel.NewArea(*dto.CurrentArea)
		if areaErr != nil {
			return nil, areaErr
		}
		currentArea = &area
	}

	var approvedBy *kernel.UUID
	if dto.ApprovedBy != nil {
		approverID, idErr := kernel.UUIDFromBytes(dto.ApprovedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		approvedBy = &approverID
	}

	return unit.RestoreUnit(
		id,
		kind,
		dto.Folio,
		dto.TotalPieces,
		status,
		currentArea,
		createdBy,
		dto.CreatedAt,
		dto.CompletedAt,
		approvedBy,
		dto.ApprovedAt,
	)
}
