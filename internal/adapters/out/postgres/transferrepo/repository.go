package transferrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/transfer"
	"tracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransferRepository implements ports.TransferRepository using GORM.
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GORM transfer repository.
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// Add saves a new pending transfer to the database.
func (r *GormTransferRepository) Add(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateFromPending persists the decision on a transfer with a
// status-conditioned UPDATE. When two processes decide the same transfer
// concurrently, the row is pending for only one of them; the loser's update
// matches zero rows and fails with an InvalidStateError.
func (r *GormTransferRepository) UpdateFromPending(ctx context.Context, aggregate *transfer.Transfer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TransferDTO{}).
		Where("id = ? AND status = ?", dto.ID, transfer.StatusPending.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"processed_by": dto.ProcessedBy,
			"processed_at": dto.ProcessedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewInvalidStateErrorWithCause("transfer", dto.Status,
			fmt.Errorf("no pending transfer with id %s", aggregate.ID()))
	}

	return nil
}

// Get retrieves a transfer by ID.
func (r *GormTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransferDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transferID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingOlderThan retrieves pending transfers proposed before the
// cutoff. The reminder job uses this to nag slow destinations.
func (r *GormTransferRepository) GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*transfer.Transfer, error) {
	var dtos []TransferDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", transfer.StatusPending.String(), cutoff).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []TransferDTO) ([]*transfer.Transfer, error) {
	transfers := make([]*transfer.Transfer, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, aggregate)
	}
	return transfers, nil
}
