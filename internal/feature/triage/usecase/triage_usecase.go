// Package usecase implements the business logic for the triage feature.
package usecase

import (
	"context"
	"time"

	"greycare_backend/internal/feature/triage/domain/entity"
)

// dbTimeout bounds a single persistence call so a stalled database does not
// hang the request.
const dbTimeout = 5 * time.Second

// TriageRepository abstracts the persistence layer for triage submissions.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TriageRepository interface {
	Create(ctx context.Context, sub *entity.TriageSubmission) error
}

// TriageUsecase provides business logic for instant-clinic submissions.
type TriageUsecase struct {
	repo TriageRepository
}

// NewTriageUsecase creates a new TriageUsecase with the given repository.
func NewTriageUsecase(r TriageRepository) *TriageUsecase {
	return &TriageUsecase{repo: r}
}

// Submit persists one triage submission. The condition value is validated at
// the transport boundary; everything else is free text from the form.
func (u *TriageUsecase) Submit(ctx context.Context, sub *entity.TriageSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	return u.repo.Create(ctx, sub)
}
