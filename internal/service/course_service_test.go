package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

type mockCourseRepo struct {
	courses  []models.Course
	students []models.StudentRef
	created  []models.Course
	deleted  []string
	err      error
}

func (m *mockCourseRepo) ListByTeacher(ctx context.Context, teacherID string) ([]models.Course, error) {
	return m.courses, m.err
}

func (m *mockCourseRepo) FindByLabel(ctx context.Context, teacherID, label string) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.courses {
		if m.courses[i].Label == label {
			return &m.courses[i], nil
		}
	}
	return nil, nil
}

func (m *mockCourseRepo) Create(ctx context.Context, course *models.Course) error {
	if m.err != nil {
		return m.err
	}
	course.ID = "generated"
	m.created = append(m.created, *course)
	return nil
}

func (m *mockCourseRepo) DeleteByLabel(ctx context.Context, teacherID, label string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, label)
	return nil
}

func (m *mockCourseRepo) ListStudentsByCourseLabel(ctx context.Context, teacherID, label string) ([]models.StudentRef, error) {
	return m.students, m.err
}

func TestCourseServiceList(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{
		{ID: "c1", Label: "1RO A"},
		{ID: "c2", Label: "2DO B"},
	}}
	svc := NewCourseService(repo, nil, nil)

	courses, err := svc.List(context.Background(), "t1")
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}

func TestCourseServiceResolveNotFound(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, nil, nil)

	_, err := svc.Resolve(context.Background(), "t1", "9NO Z")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestCourseServiceResolveRepoError(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{err: errors.New("boom")}, nil, nil)

	_, err := svc.Resolve(context.Background(), "t1", "1RO A")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
}

func TestCourseServiceCreateSplitsLabel(t *testing.T) {
	repo := &mockCourseRepo{}
	svc := NewCourseService(repo, nil, nil)

	course, err := svc.Create(context.Background(), CreateCourseRequest{TeacherID: "t1", Label: "  3ro   c "})
	require.NoError(t, err)
	assert.Equal(t, "3RO C", course.Label)
	assert.Equal(t, "3RO", course.Grade)
	assert.Equal(t, "C", course.Parallel)
	assert.Equal(t, "generated", course.ID)
}

func TestCourseServiceCreateRejectsLabelWithoutParallel(t *testing.T) {
	svc := NewCourseService(&mockCourseRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateCourseRequest{TeacherID: "t1", Label: "3RO"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestCourseServiceCreateRejectsDuplicate(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{{ID: "c1", Label: "1RO A"}}}
	svc := NewCourseService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateCourseRequest{TeacherID: "t1", Label: "1ro a"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Empty(t, repo.created)
}

func TestCourseServiceDelete(t *testing.T) {
	repo := &mockCourseRepo{courses: []models.Course{{ID: "c1", Label: "1RO A"}}}
	svc := NewCourseService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "t1", "1RO A"))
	assert.Equal(t, []string{"1RO A"}, repo.deleted)

	err := svc.Delete(context.Background(), "t1", "9NO Z")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)
}

func TestCourseServiceListStudents(t *testing.T) {
	repo := &mockCourseRepo{students: []models.StudentRef{
		{ID: "s1", RegisterNumber: 1, FullName: "ANA", Status: models.StudentStatusActive},
	}}
	svc := NewCourseService(repo, nil, nil)

	students, err := svc.ListStudents(context.Background(), "t1", "1RO A")
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "ANA", students[0].FullName)
}
