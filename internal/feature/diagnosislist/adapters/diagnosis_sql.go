// Package adapters はdiagnosislistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"greycare_backend/internal/feature/diagnosislist/domain/entity"
	"greycare_backend/internal/feature/diagnosislist/usecase"
)

// diagnosisSQL はDiagnosisRepositoryインターフェースのGORM実装です。
type diagnosisSQL struct {
	db *gorm.DB
}

var _ usecase.DiagnosisRepository = (*diagnosisSQL)(nil)

// NewDiagnosisRepository は指定されたDB接続でdiagnosisSQLリポジトリの新しいインスタンスを生成します。
func NewDiagnosisRepository(db *gorm.DB) *diagnosisSQL {
	return &diagnosisSQL{db: db}
}

// List はsort_key順にカタログ全件を返します。
func (r *diagnosisSQL) List(ctx context.Context) ([]entity.Diagnosis, error) {
	var diagnoses []entity.Diagnosis
	if err := r.db.WithContext(ctx).
		Order("sort_key ASC").
		Find(&diagnoses).Error; err != nil {
		return nil, err
	}
	return diagnoses, nil
}
