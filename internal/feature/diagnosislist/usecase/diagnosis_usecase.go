// Package usecase implements the business logic for diagnosis-catalog operations.
package usecase

import (
	"context"

	"greycare_backend/internal/feature/diagnosislist/domain/entity"
)

// DiagnosisRepository abstracts the persistence layer for the diagnosis catalog.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DiagnosisRepository interface {
	List(ctx context.Context) ([]entity.Diagnosis, error)
}

// DiagnosisUsecase provides business logic for diagnosis-catalog operations.
type DiagnosisUsecase struct {
	repo DiagnosisRepository
}

// NewDiagnosisUsecase creates a new DiagnosisUsecase with the given repository.
func NewDiagnosisUsecase(r DiagnosisRepository) *DiagnosisUsecase {
	return &DiagnosisUsecase{repo: r}
}

// ListDiagnoses returns the catalog in display order.
func (u *DiagnosisUsecase) ListDiagnoses(ctx context.Context) ([]entity.Diagnosis, error) {
	return u.repo.List(ctx)
}
