package ports

import (
	"context"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/core/domain/model/transfer"
)

// TransferRepository defines the persistence contract for transfers.
type TransferRepository interface {
	// Add persists a new pending transfer.
	Add(ctx context.Context, aggregate *transfer.Transfer) error

	// UpdateFromPending persists the accepted or rejected state of a transfer
	// that is still pending in storage. The write is conditioned on the
	// stored status being pending so that two concurrent decisions cannot
	// both settle; the loser gets an InvalidStateError.
	UpdateFromPending(ctx context.Context, aggregate *transfer.Transfer) error

	// Get retrieves a transfer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.Transfer, error)

	// GetAllPendingOlderThan retrieves pending transfers proposed before the
	// cutoff. Used by the reminder job.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*transfer.Transfer, error)
}
