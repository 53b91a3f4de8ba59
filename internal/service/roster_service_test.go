package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
)

type mockCourseFinder struct {
	course *models.Course
	err    error
}

func (m *mockCourseFinder) FindByLabel(ctx context.Context, teacherID, label string) (*models.Course, error) {
	return m.course, m.err
}

type mockRosterRepo struct {
	students []models.Student
	upserted []models.Student
	deleted  []string
	err      error
}

func (m *mockRosterRepo) ListByCourse(ctx context.Context, courseID string) ([]models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.students, nil
}

func (m *mockRosterRepo) UpsertBatch(ctx context.Context, students []models.Student) error {
	m.upserted = students
	return nil
}

func (m *mockRosterRepo) DeleteByIDs(ctx context.Context, ids []string) error {
	m.deleted = append(m.deleted, ids...)
	return nil
}

func testCourse() *models.Course {
	return &models.Course{ID: "c1", TeacherID: "t1", Grade: "1RO", Parallel: "A", Label: "1RO A"}
}

func TestRosterServiceSaveRenumbersAndNormalizes(t *testing.T) {
	repo := &mockRosterRepo{students: []models.Student{
		{ID: "a", CourseID: "c1", RegisterNumber: 1, FullName: "ANA"},
		{ID: "b", CourseID: "c1", RegisterNumber: 2, FullName: "BRUNO"},
	}}
	svc := NewRosterService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	saved, err := svc.Save(context.Background(), SaveRosterRequest{
		TeacherID:   "t1",
		CourseLabel: "1RO A",
		Students: []RosterRowRequest{
			{ID: "b", FullName: "bruno mamani", Gender: "m", BirthDate: "2010-03-01", TutorName: "rosa mamani"},
			{FullName: "Carla Quispe"},
		},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	assert.Equal(t, 1, saved[0].RegisterNumber)
	assert.Equal(t, "BRUNO MAMANI", saved[0].FullName)
	assert.Equal(t, "M", saved[0].Gender)
	assert.Equal(t, "ROSA MAMANI", saved[0].TutorName)
	require.NotNil(t, saved[0].Age)
	assert.Equal(t, 15, *saved[0].Age)

	assert.Equal(t, 2, saved[1].RegisterNumber)
	assert.Equal(t, "CARLA QUISPE", saved[1].FullName)
	assert.Equal(t, models.StudentStatusActive, saved[1].Status)
	assert.Nil(t, saved[1].Age)

	assert.Equal(t, []string{"a"}, repo.deleted, "students omitted from the submission are removed")
}

func TestRosterServiceSaveRequiresName(t *testing.T) {
	repo := &mockRosterRepo{}
	svc := NewRosterService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())

	_, err := svc.Save(context.Background(), SaveRosterRequest{
		TeacherID:   "t1",
		CourseLabel: "1RO A",
		Students:    []RosterRowRequest{{FullName: ""}},
	})
	require.Error(t, err)
	assert.Nil(t, repo.upserted)
}

func TestRosterServiceSaveUnknownCourse(t *testing.T) {
	svc := NewRosterService(&mockRosterRepo{}, &mockCourseFinder{}, validator.New(), zap.NewNop())

	_, err := svc.Save(context.Background(), SaveRosterRequest{
		TeacherID:   "t1",
		CourseLabel: "9NO Z",
		Students:    []RosterRowRequest{{FullName: "ANA"}},
	})
	require.Error(t, err)
}

func TestRosterServiceGetRecomputesAge(t *testing.T) {
	birth := time.Date(2012, time.September, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRosterRepo{students: []models.Student{
		{ID: "a", CourseID: "c1", FullName: "ANA", BirthDate: &birth},
		{ID: "b", CourseID: "c1", FullName: "BRUNO"},
	}}
	svc := NewRosterService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	students, err := svc.Get(context.Background(), "t1", "1RO A")
	require.NoError(t, err)
	require.NotNil(t, students[0].Age)
	assert.Equal(t, 12, *students[0].Age, "birthday not reached yet this year")
	assert.Nil(t, students[1].Age)
}

func TestRosterServiceDeleteRequiresID(t *testing.T) {
	repo := &mockRosterRepo{}
	svc := NewRosterService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())

	err := svc.Delete(context.Background(), DeleteStudentRequest{TeacherID: "t1", CourseLabel: "1RO A"})
	require.Error(t, err)
	assert.Empty(t, repo.deleted)

	err = svc.Delete(context.Background(), DeleteStudentRequest{TeacherID: "t1", CourseLabel: "1RO A", StudentID: "a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, repo.deleted)
}

func TestParseRosterImport(t *testing.T) {
	text := "Ana Flores\tF\t123\tR-1\t2011-05-20\tMaria Flores\tMadre\t777\r\n" +
		"\n" +
		"\tF\n" +
		"Bruno Mamani\tM"

	rows := ParseRosterImport(text)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana Flores", rows[0].FullName)
	assert.Equal(t, "F", rows[0].Gender)
	assert.Equal(t, "123", rows[0].NationalID)
	assert.Equal(t, "R-1", rows[0].RUDE)
	assert.Equal(t, "2011-05-20", rows[0].BirthDate)
	assert.Equal(t, "Maria Flores", rows[0].TutorName)
	assert.Equal(t, "Madre", rows[0].TutorRelationship)
	assert.Equal(t, "777", rows[0].TutorPhone)

	assert.Equal(t, "Bruno Mamani", rows[1].FullName)
	assert.Empty(t, rows[1].BirthDate)
}

func TestRosterServiceImportAppends(t *testing.T) {
	repo := &mockRosterRepo{students: []models.Student{
		{ID: "a", CourseID: "c1", RegisterNumber: 1, FullName: "ANA"},
	}}
	svc := NewRosterService(repo, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC) }

	saved, err := svc.Import(context.Background(), ImportRosterRequest{
		TeacherID:   "t1",
		CourseLabel: "1RO A",
		Text:        "Bruno Mamani\tM",
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "ANA", saved[0].FullName)
	assert.Equal(t, 1, saved[0].RegisterNumber)
	assert.Equal(t, "BRUNO MAMANI", saved[1].FullName)
	assert.Equal(t, 2, saved[1].RegisterNumber)
	assert.Empty(t, repo.deleted)
}

func TestRosterServiceImportEmptyText(t *testing.T) {
	svc := NewRosterService(&mockRosterRepo{}, &mockCourseFinder{course: testCourse()}, validator.New(), zap.NewNop())

	_, err := svc.Import(context.Background(), ImportRosterRequest{
		TeacherID:   "t1",
		CourseLabel: "1RO A",
		Text:        "\n\t\n",
	})
	require.Error(t, err)
}
