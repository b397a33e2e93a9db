// Package usecase implements the business logic for the healthinfo feature.
package usecase

import (
	"context"
	"time"

	"greycare_backend/internal/feature/healthinfo/domain/entity"
)

// dbTimeout bounds a single persistence call so a stalled database does not
// hang the request.
const dbTimeout = 5 * time.Second

// HealthInfoRepository abstracts the persistence layer for health-info records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type HealthInfoRepository interface {
	Create(ctx context.Context, info *entity.HealthInfo) error
}

// SubmitInput holds the fields of one intake-form submission.
type SubmitInput struct {
	BMI                 float64
	Hypertension        string
	SmokingHistory      string
	BloodGroup          string
	GlucoseLevel        float64
	HasSeriousDiagnosis bool
}

// HealthInfoUsecase provides business logic for health-info submissions.
type HealthInfoUsecase struct {
	repo HealthInfoRepository
}

// NewHealthInfoUsecase creates a new HealthInfoUsecase with the given repository.
func NewHealthInfoUsecase(r HealthInfoRepository) *HealthInfoUsecase {
	return &HealthInfoUsecase{repo: r}
}

// Submit persists one health-info record.
func (u *HealthInfoUsecase) Submit(ctx context.Context, in SubmitInput) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	info := &entity.HealthInfo{
		BMI:                 in.BMI,
		Hypertension:        in.Hypertension,
		SmokingHistory:      in.SmokingHistory,
		BloodGroup:          in.BloodGroup,
		GlucoseLevel:        in.GlucoseLevel,
		HasSeriousDiagnosis: in.HasSeriousDiagnosis,
	}
	return u.repo.Create(ctx, info)
}
