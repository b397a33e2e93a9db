// Package adapters provides repository implementations for the triage feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"greycare_backend/internal/feature/triage/domain/entity"
	"greycare_backend/internal/feature/triage/usecase"
)

// triageSQL is the GORM implementation of the TriageRepository interface.
type triageSQL struct {
	db *gorm.DB
}

var _ usecase.TriageRepository = (*triageSQL)(nil)

// NewTriageRepository creates a new triageSQL repository with the given DB connection.
func NewTriageRepository(db *gorm.DB) *triageSQL {
	return &triageSQL{db: db}
}

// Create appends one triage submission.
func (r *triageSQL) Create(ctx context.Context, sub *entity.TriageSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}
