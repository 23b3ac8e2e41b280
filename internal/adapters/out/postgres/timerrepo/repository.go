package timerrepo

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/areatime"
	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTimerRepository implements ports.TimerRepository using GORM.
type GormTimerRepository struct {
	db *gorm.DB
}

// NewGormTimerRepository creates a new GORM timer repository.
func NewGormTimerRepository(db *gorm.DB) *GormTimerRepository {
	return &GormTimerRepository{db: db}
}

// Add inserts a time record. Any existing record for the same (unit, area)
// pair, running or finished, makes the insert fail with a
// DuplicateTimeRecordError. The check runs inside the caller's transaction
// and the composite primary key backs it up against races.
func (r *GormTimerRepository) Add(ctx context.Context, timer *areatime.Timer) error {
	if err := timer.Validate(); err != nil {
		return err
	}

	dto := fromDomain(timer)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&TimerDTO{}).
		Where("unit_id = ? AND area = ?", dto.UnitID, dto.Area).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return errs.NewDuplicateTimeRecordError(timer.UnitID().String(), timer.Area().String())
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewDuplicateTimeRecordError(timer.UnitID().String(), timer.Area().String())
		}
		return err
	}

	return nil
}

// Update persists a stopped timer's fixed minutes.
func (r *GormTimerRepository) Update(ctx context.Context, timer *areatime.Timer) error {
	if err := timer.Validate(); err != nil {
		return err
	}

	dto := fromDomain(timer)
	result := r.db.WithContext(ctx).
		Model(&TimerDTO{}).
		Where("unit_id = ? AND area = ?", dto.UnitID, dto.Area).
		Updates(map[string]any{
			"stopped_at": dto.StoppedAt,
			"minutes":    dto.Minutes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("timer", timer.UnitID().String())
	}

	return nil
}

// Get retrieves the time record of one (unit, area) pair.
func (r *GormTimerRepository) Get(ctx context.Context, unitID kernel.UUID, area kernel.Area) (*areatime.Timer, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}
	if err := area.Validate(); err != nil {
		return nil, err
	}

	var dto TimerDTO
	err := r.db.WithContext(ctx).
		First(&dto, "unit_id = ? AND area = ?", unitID.Bytes(), area.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("timer", unitID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
