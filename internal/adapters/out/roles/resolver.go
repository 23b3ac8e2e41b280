// Package roles resolves a user's area and privilege level from the user
// directory. Lookups run on almost every request, so results are held in a
// small in-memory cache.
package roles

import (
	"context"
	"errors"
	"time"

	"tracker/internal/core/domain/model/kernel"
	"tracker/internal/pkg/errs"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// UserDTO represents one directory row.
type UserDTO struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	Area         string `gorm:"type:varchar(32);not null"`
	IsPrivileged bool   `gorm:"not null"`
}

// TableName specifies the database table name for directory rows.
func (UserDTO) TableName() string {
	return "users"
}

// CachedResolver implements ports.RoleResolver against the users table with
// a go-cache front. Entries expire so area reassignments take effect within
// the TTL without a restart.
type CachedResolver struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewCachedResolver creates a resolver whose entries live for ttl.
func NewCachedResolver(db *gorm.DB, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		db:    db,
		cache: cache.New(ttl, 2*ttl),
	}
}

// AreaOf returns the area the user works in.
func (r *CachedResolver) AreaOf(ctx context.Context, userID kernel.UUID) (kernel.Area, error) {
	user, err := r.lookup(ctx, userID)
	if err != nil {
		return kernel.Area(""), err
	}
	return kernel.NewArea(user.Area)
}

// IsPrivileged reports whether the user may approve, complete, cancel, and
// delete units.
func (r *CachedResolver) IsPrivileged(ctx context.Context, userID kernel.UUID) (bool, error) {
	user, err := r.lookup(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.IsPrivileged, nil
}

func (r *CachedResolver) lookup(ctx context.Context, userID kernel.UUID) (UserDTO, error) {
	if err := userID.Validate(); err != nil {
		return UserDTO{}, err
	}

	key := userID.String()
	if cached, found := r.cache.Get(key); found {
		return cached.(UserDTO), nil
	}

	var user UserDTO
	if err := r.db.WithContext(ctx).First(&user, "id = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserDTO{}, errs.NewObjectNotFoundError("userID", key)
		}
		return UserDTO{}, err
	}

	r.cache.Set(key, user, cache.DefaultExpiration)
	return user, nil
}
