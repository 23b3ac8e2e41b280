package unitrepo

import (
	"context"
	"errors"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/unit"
	"tracker/internal/core/ports"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitRepository implements ports.UnitRepository using GORM.
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// Add saves a new unit to the database.
func (r *GormUnitRepository) Add(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing unit to the database.
func (r *GormUnitRepository) Update(ctx context.Context, aggregate *unit.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a unit by ID. Soft-deleted units are returned too; callers
// decide whether a deleted unit is acceptable.
func (r *GormUnitRepository) Get(ctx context.Context, id kernel.UUID) (*unit.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unitID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFolio retrieves a unit by its human-facing folio code.
func (r *GormUnitRepository) GetByFolio(ctx context.Context, folio string) (*unit.Unit, error) {
	if folio == "" {
		return nil, errs.NewValueIsRequiredError("folio")
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "folio = ?", folio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("folio", folio)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves units matching the filter, newest first.
func (r *GormUnitRepository) GetAll(ctx context.Context, filter ports.UnitFilter) ([]*unit.Unit, error) {
	query := r.db.WithContext(ctx).Model(&UnitDTO{})

	if filter.Kind != unit.KindUnknown {
		query = query.Where("kind = ?", filter.Kind.String())
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		query = query.Where("status IN ?", statuses)
	}
	if !filter.IncludeDeleted {
		query = query.Where("status != ?", unit.Deleted.String())
	}

	var dtos []UnitDTO
	if err := query.Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllHeldByArea retrieves non-deleted units for which the area holds at
// least one piece.
func (r *GormUnitRepository) GetAllHeldByArea(ctx context.Context, area kernel.Area) ([]*unit.Unit, error) {
	if err := area.Validate(); err != nil {
		return nil, err
	}

	var dtos []UnitDTO
	err := r.db.WithContext(ctx).
		Joins("JOIN piece_records ON piece_records.unit_id = units.id").
		Where("piece_records.area = ?", area.String()).
		Where("units.status != ?", unit.Deleted.String()).
		Order("units.folio").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []UnitDTO) ([]*unit.Unit, error) {
	units := make([]*unit.Unit, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		units = append(units, aggregate)
	}
	return units, nil
}
