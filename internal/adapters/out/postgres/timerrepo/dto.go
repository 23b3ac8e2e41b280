// Package timerrepo provides data transfer objects and mapping functions for
// area time records. The composite primary key on (unit_id, area) is the
// database side of the write-once rule: a second record for the pair cannot
// be inserted.
package timerrepo

import (
	"time"

	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TimerDTO represents one area time record.
type TimerDTO struct {
	UnitID    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Area      string     `gorm:"type:varchar(32);primaryKey"`
	IsManual  bool       `gorm:"not null"`
	StartedAt time.Time  `gorm:"not null"`
	StoppedAt *time.Time `gorm:""`
	Minutes   *int       `gorm:"type:int"`
	CreatedBy uuid.UUID  `gorm:"type:uuid;not null"`
}

// TableName specifies the database table name for time records.
func (TimerDTO) TableName() string {
	return "time_records"
}

// fromDomain converts a timer to its database representation.
func fromDomain(timer *areatime.Timer) TimerDTO {
	dto := TimerDTO{
		UnitID:    timer.UnitID().Bytes(),
		Area:      timer.Area().String(),
		IsManual:  timer.IsManual(),
		StartedAt: timer.StartedAt(),
		StoppedAt: timer.StoppedAt(),
		CreatedBy: timer.CreatedBy().Bytes(),
	}

	if minutes, fixed := timer.Minutes(); fixed {
		dto.Minutes = &minutes
	}

	return dto
}

// toDomain reconstructs a timer from its database row.
func toDomain(dto TimerDTO) (*areatime.Timer, error) {
	unitID, err := kernel.UUIDFromBytes(dto.UnitID[:])
	if err != nil {
		return nil, err
	}
	area, err := kernel.NewArea(dto.Area)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	return areatime.RestoreTimer(
		unitID,
		area,
		dto.IsManual,
		dto.StartedAt,
		dto.StoppedAt,
		dto.Minutes,
		createdBy,
	)
}
