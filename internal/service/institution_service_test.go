package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
)

type mockInstitutionRepo struct {
	data  *models.InstitutionalData
	saved *models.InstitutionalData
}

func (m *mockInstitutionRepo) Get(ctx context.Context, teacherID string) (*models.InstitutionalData, error) {
	return m.data, nil
}

func (m *mockInstitutionRepo) Upsert(ctx context.Context, data *models.InstitutionalData) error {
	m.saved = data
	return nil
}

func TestInstitutionGetDefaultsToEmptyBlock(t *testing.T) {
	svc := NewInstitutionService(&mockInstitutionRepo{}, validator.New(), zap.NewNop())

	data, err := svc.Get(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", data.TeacherID)
	assert.Empty(t, data.SchoolUnit)
}

func TestInstitutionSave(t *testing.T) {
	repo := &mockInstitutionRepo{}
	svc := NewInstitutionService(repo, validator.New(), zap.NewNop())

	data, err := svc.Save(context.Background(), SaveInstitutionRequest{
		TeacherID:      "t1",
		Department:     "LA PAZ",
		SchoolUnit:     "U.E. SIMON BOLIVAR",
		ManagementYear: "2025",
		DirectorName:   "JUAN PEREZ",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "U.E. SIMON BOLIVAR", data.SchoolUnit)
	assert.Equal(t, "JUAN PEREZ", data.DirectorName)
}

func TestInstitutionSaveRequiresTeacher(t *testing.T) {
	repo := &mockInstitutionRepo{}
	svc := NewInstitutionService(repo, validator.New(), zap.NewNop())

	_, err := svc.Save(context.Background(), SaveInstitutionRequest{Department: "LA PAZ"})
	require.Error(t, err)
	assert.Nil(t, repo.saved)
}
