// Package adapters provides repository implementations for the healthinfo feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"greycare_backend/internal/feature/healthinfo/domain/entity"
	"greycare_backend/internal/feature/healthinfo/usecase"
)

// healthInfoSQL is the GORM implementation of the HealthInfoRepository interface.
type healthInfoSQL struct {
	db *gorm.DB
}

var _ usecase.HealthInfoRepository = (*healthInfoSQL)(nil)

// NewHealthInfoRepository creates a new healthInfoSQL repository with the given DB connection.
func NewHealthInfoRepository(db *gorm.DB) *healthInfoSQL {
	return &healthInfoSQL{db: db}
}

// Create appends one health-info record.
func (r *healthInfoSQL) Create(ctx context.Context, info *entity.HealthInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}
