// Package transferrepo provides data transfer objects and mapping functions
// for transfer persistence. The pending-conditioned update in this package is
// one half of the double-accept defense; the domain state machine is the
// other.
package transferrepo

import (
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/transfer"

	"github.com/google/uuid"
)

// TransferDTO represents the database structure for persisting transfers.
type TransferDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UnitID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	FromArea    string     `gorm:"type:varchar(32);not null"`
	ToArea      string     `gorm:"type:varchar(32);not null;index"`
	Pieces      int        `gorm:"type:int;not null"`
	Status      string     `gorm:"type:varchar(16);not null;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time  `gorm:"not null"`
	ProcessedAt *time.Time `gorm:""`
}

// TableName specifies the database table name for transfer entities.
func (TransferDTO) TableName() string {
	return "transfers"
}

// fromDomain converts a transfer aggregate to its database representation.
func fromDomain(aggregate *transfer.Transfer) TransferDTO {
	dto := TransferDTO{
		ID:          aggregate.ID().Bytes(),
		UnitID:      aggregate.UnitID().Bytes(),
		FromArea:    aggregate.FromArea().String(),
		ToArea:      aggregate.ToArea().String(),
		Pieces:      aggregate.Pieces(),
		Status:      aggregate.Status().String(),
		CreatedBy:   aggregate.CreatedBy().Bytes(),
		CreatedAt:   aggregate.CreatedAt(),
		ProcessedAt: aggregate.ProcessedAt(),
	}

	if processedBy := aggregate.ProcessedBy(); processedBy != nil {
		id := processedBy.Bytes()
		dto.ProcessedBy = &id
	}

	return dto
}

// toDomain reconstructs a transfer aggregate from its database row.
func toDomain(dto TransferDTO) (*transfer.Transfer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	fromArea, err := kernel.NewArea(dto.FromArea)
	if err != nil {
		return nil, err
	}
	toArea, err := kernel.NewArea(dto.ToArea)
	if err != nil {
		return nil, err
	}
	status, err := transfer.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var processedBy *kernel.UUID
	if dto.ProcessedBy != nil {
		deciderID, idErr := kernel.UUIDFromBytes(dto.ProcessedBy[:])
		if idErr != nil {
			return nil, idErr
		}
		processedBy = &deciderID
	}

	return transfer.RestoreTransfer(
		id,
		unitID,
		fromArea,
		toArea,
		dto.Pieces,
		status,
		createdBy,
		processedBy,
		dto.CreatedAt,
		dto.ProcessedAt,
	)
}
