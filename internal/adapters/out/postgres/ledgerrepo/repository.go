package ledgerrepo

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/ledger"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLedgerRepository implements ports.LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add inserts a new custody row. The (unit, area) pair must not exist yet;
// the settlement uses SetPieces for rows that do.
func (r *GormLedgerRepository) Add(ctx context.Context, record *ledger.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SetPieces updates one custody row. Zero pieces deletes the row so the
// ledger never stores empty custody.
func (r *GormLedgerRepository) SetPieces(ctx context.Context, unitID kernel.UUID, area kernel.Area, pieces int) error {
	if err := unitID.Validate(); err != nil {
		return err
	}
	if err := area.Validate(); err != nil {
		return err
	}
	if pieces < 0 {
		return errs.NewValueIsInvalidError("pieces")
	}

	if pieces == 0 {
		result := r.db.WithContext(ctx).
			Where("unit_id = ? AND area = ?", unitID.Bytes(), area.String()).
			Delete(&RecordDTO{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("pieceRecord", unitID.String())
		}
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("unit_id = ? AND area = ?", unitID.Bytes(), area.String()).
		Updates(map[string]any{
			"pieces":     pieces,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pieceRecord", unitID.String())
	}

	return nil
}

// GetDistribution loads every custody row of one unit as a Distribution.
// The distribution constructor revalidates the rows, so a corrupted table
// surfaces here rather than in the settlement arithmetic.
func (r *GormLedgerRepository) GetDistribution(ctx context.Context, unitID kernel.UUID) (*ledger.Distribution, error) {
	if err := unitID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID.Bytes()).
		Order("area").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*ledger.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return ledger.NewDistribution(unitID, records)
}
