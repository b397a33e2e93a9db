package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"greycare_backend/internal/feature/diagnosislist/domain/entity"
	"greycare_backend/internal/feature/diagnosislist/usecase"
)

// mockDiagnosisRepository is a mock implementation of the DiagnosisRepository interface.
type mockDiagnosisRepository struct {
	ListFunc func(ctx context.Context) ([]entity.Diagnosis, error)
}

// List calls the mock's List function.
func (m *mockDiagnosisRepository) List(ctx context.Context) ([]entity.Diagnosis, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// TestNewDiagnosisUsecase verifies that the constructor produces a usable instance.
func TestNewDiagnosisUsecase(t *testing.T) {
	t.Parallel()

	mockRepo := &mockDiagnosisRepository{}
	uc := usecase.NewDiagnosisUsecase(mockRepo)

	assert.NotNil(t, uc, "usecase should not be nil")
}

// TestDiagnosisUsecase_ListDiagnoses verifies ListDiagnoses behavior with a table-driven test.
func TestDiagnosisUsecase_ListDiagnoses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		mockList          func(ctx context.Context) ([]entity.Diagnosis, error)
		expectedDiagnoses []entity.Diagnosis
		wantErr           bool
		errMsg            string
	}{
		{
			name: "success: returns catalog entries",
			mockList: func(ctx context.Context) ([]entity.Diagnosis, error) {
				return []entity.Diagnosis{
					{ID: 1, Code: "diabetes", Name: "Diabetes", SortKey: 10},
					{ID: 2, Code: "hypertension", Name: "Hypertension", SortKey: 20},
				}, nil
			},
			expectedDiagnoses: []entity.Diagnosis{
				{ID: 1, Code: "diabetes", Name: "Diabetes", SortKey: 10},
				{ID: 2, Code: "hypertension", Name: "Hypertension", SortKey: 20},
			},
		},
		{
			name: "success: returns empty list when catalog is empty",
			mockList: func(ctx context.Context) ([]entity.Diagnosis, error) {
				return []entity.Diagnosis{}, nil
			},
			expectedDiagnoses: []entity.Diagnosis{},
		},
		{
			name: "success: returns nil when repository returns nil",
			mockList: func(ctx context.Context) ([]entity.Diagnosis, error) {
				return nil, nil
			},
			expectedDiagnoses: nil,
		},
		{
			name: "failure: repository returns error",
			mockList: func(ctx context.Context) ([]entity.Diagnosis, error) {
				return nil, errors.New("database connection failed")
			},
			wantErr: true,
			errMsg:  "database connection failed",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mockRepo := &mockDiagnosisRepository{ListFunc: tt.mockList}
			uc := usecase.NewDiagnosisUsecase(mockRepo)

			diagnoses, err := uc.ListDiagnoses(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.EqualError(t, err, tt.errMsg)
				}
				assert.Nil(t, diagnoses)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedDiagnoses, diagnoses)
			}
		})
	}
}
