package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
	"github.com/registro-docente/api/internal/repository"
)

type mockProgressRepo struct {
	rows  []repository.ProgressRow
	saved *models.CurricularProgress
}

func (m *mockProgressRepo) ListByTeacher(ctx context.Context, teacherID string) ([]repository.ProgressRow, error) {
	return m.rows, nil
}

func (m *mockProgressRepo) Upsert(ctx context.Context, progress *models.CurricularProgress) error {
	m.saved = progress
	return nil
}

func progressRow(courseID, label string, trimester, planned, developed int) repository.ProgressRow {
	return repository.ProgressRow{
		CurricularProgress: models.CurricularProgress{CourseID: courseID, Trimester: trimester, Planned: planned, Developed: developed},
		CourseLabel:        label,
	}
}

func TestProgressOverview(t *testing.T) {
	repo := &mockProgressRepo{rows: []repository.ProgressRow{
		progressRow("c1", "1RO A", 1, 10, 5),
		progressRow("c1", "1RO A", 2, 10, 12),
		progressRow("c2", "2DO B", 1, 0, 3),
	}}
	svc := NewProgressService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())

	overview, err := svc.Overview(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, overview.Courses, 2)

	first := overview.Courses[0]
	assert.Equal(t, "1RO A", first.CourseLabel)
	assert.Equal(t, 50, first.Trimester1.PctDeveloped)
	assert.Equal(t, 120, first.Trimester2.PctDeveloped, "developed beyond planned is not clamped")
	assert.Equal(t, 0, first.Trimester3.Planned)

	second := overview.Courses[1]
	assert.Equal(t, 0, second.Trimester1.PctDeveloped, "zero planned yields zero percent")

	assert.Equal(t, 20, overview.Global.Planned)
	assert.Equal(t, 20, overview.Global.Developed)
	assert.Equal(t, 100, overview.Global.PctDeveloped, "global sums topics before dividing")
}

func TestProgressSave(t *testing.T) {
	repo := &mockProgressRepo{}
	svc := NewProgressService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())

	err := svc.Save(context.Background(), SaveProgressRequest{
		TeacherID:   "t1",
		CourseLabel: "1RO A",
		Trimester:   2,
		Planned:     8,
		Developed:   3,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	assert.Equal(t, "c1", repo.saved.CourseID)
	assert.Equal(t, 2, repo.saved.Trimester)
	assert.Equal(t, 8, repo.saved.Planned)
}

func TestProgressSaveUnknownCourse(t *testing.T) {
	repo := &mockProgressRepo{}
	svc := NewProgressService(repo, &mockCourseFinder{}, validator.New(), zap.NewNop())

	err := svc.Save(context.Background(), SaveProgressRequest{
		TeacherID:   "t1",
		CourseLabel: "9NO Z",
		Trimester:   1,
	})
	require.Error(t, err)
	assert.Nil(t, repo.saved)
}
