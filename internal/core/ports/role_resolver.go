package ports

import (
	"context"

	"tracker/internal/core/domain/model/kernel"
)

// RoleResolver answers authorization questions about users. Implementations
// may cache: role changes are rare and a short staleness window is
// acceptable for the floor workflows.
type RoleResolver interface {
	// AreaOf returns the area a user works in.
	AreaOf(ctx context.Context, userID kernel.UUID) (kernel.Area, error)

	// IsPrivileged reports whether the user belongs to one of the privileged
	// areas (admin, envios, operaciones) that may complete units, resolve
	// approval gates, and act across areas.
	IsPrivileged(ctx context.Context, userID kernel.UUID) (bool, error)
}
