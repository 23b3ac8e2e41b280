// Package historyrepo provides data transfer objects and mapping functions
// for the append-only audit log.
package historyrepo

import (
	"time"

	"tracker/internal/core/domain/model/history"

	"github.com/google/uuid"
)

// EventDTO represents one audit event row.
type EventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UnitID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Action      string    `gorm:"type:varchar(32);not null"`
	Description string    `gorm:"type:text;not null"`
	Actor       uuid.UUID `gorm:"type:uuid;not null"`
	FromArea    *string   `gorm:"type:varchar(32)"`
	ToArea      *string   `gorm:"type:varchar(32)"`
	Pieces      *int      `gorm:"type:int"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "history_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event *history.Event) EventDTO {
	dto := EventDTO{
		ID:          event.ID().Bytes(),
		UnitID:      event.UnitID().Bytes(),
		Action:      event.Action().String(),
		Description: event.Description(),
		Actor:       event.Actor().Bytes(),
		Pieces:      event.Pieces(),
		OccurredAt:  event.OccurredAt(),
	}

	if area := event.FromArea(); area != nil {
		s := area.String()
		dto.FromArea = &s
	}
	if area := event.ToArea(); area != nil {
		s := area.String()
		dto.ToArea = &s
	}

	return dto
}
