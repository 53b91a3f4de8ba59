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
	appErrors "github.com/registro-docente/api/pkg/errors"
)

type mockGradeRepo struct {
	criteria        []models.GradingCriteria
	grades          []models.StudentGrade
	savedCriteria   []models.GradingCriteria
	savedGrades     []models.StudentGrade
	courseListCalls int
}

func (m *mockGradeRepo) ListCriteria(ctx context.Context, courseID string, trimester int) ([]models.GradingCriteria, error) {
	return m.criteria, nil
}

func (m *mockGradeRepo) UpsertCriteria(ctx context.Context, criteria []models.GradingCriteria) error {
	m.savedCriteria = criteria
	return nil
}

func (m *mockGradeRepo) ListGrades(ctx context.Context, courseID string, trimester int) ([]models.StudentGrade, error) {
	var out []models.StudentGrade
	for _, g := range m.grades {
		if g.Trimester == trimester {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGradeRepo) ListGradesByCourse(ctx context.Context, courseID string) ([]models.StudentGrade, error) {
	m.courseListCalls++
	return m.grades, nil
}

func (m *mockGradeRepo) UpsertGrades(ctx context.Context, grades []models.StudentGrade) error {
	m.savedGrades = grades
	return nil
}

type mockGradeCache struct {
	values  map[string][]models.CentralizerRow
	deleted []string
}

func (m *mockGradeCache) Get(ctx context.Context, key string, dest interface{}) error {
	if rows, ok := m.values[key]; ok {
		*(dest.(*[]models.CentralizerRow)) = rows
		return nil
	}
	return appErrors.ErrCacheMiss
}

func (m *mockGradeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.values == nil {
		m.values = make(map[string][]models.CentralizerRow)
	}
	m.values[key] = value.([]models.CentralizerRow)
	return nil
}

func (m *mockGradeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	delete(m.values, pattern)
	return nil
}

func newGradeService(repo *mockGradeRepo, cache *mockGradeCache) *GradeService {
	return NewGradeService(repo, attendanceRoster(), &mockCourseFinder{course: testCourse()}, cache, time.Minute, validator.New(), zap.NewNop())
}

func validSave() SaveGradesRequest {
	return SaveGradesRequest{
		TeacherID:         "t1",
		CourseLabel:       "1RO A",
		Trimester:         1,
		LoadedCourseLabel: "1RO A",
		LoadedTrimester:   1,
	}
}

func TestGradeSaveRejectsStaleContext(t *testing.T) {
	repo := &mockGradeRepo{}
	svc := newGradeService(repo, &mockGradeCache{})

	req := validSave()
	req.LoadedTrimester = 2
	err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStaleContext.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 412, appErrors.FromError(err).Status)
	assert.Empty(t, repo.savedGrades)

	req = validSave()
	req.LoadedCourseLabel = "2DO B"
	err = svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrStaleContext.Code, appErrors.FromError(err).Code)
}

func TestGradeSaveRejectsScoreAboveCap(t *testing.T) {
	svc := newGradeService(&mockGradeRepo{}, &mockGradeCache{})

	req := validSave()
	req.Scores = map[string]map[string][]string{"a": {"ser": {"12"}}}
	err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGradeSaveRejectsTooManyCriteria(t *testing.T) {
	svc := newGradeService(&mockGradeRepo{}, &mockGradeCache{})

	req := validSave()
	req.Criteria = map[string][]string{"auto": {"UNO", "DOS"}}
	err := svc.Save(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGradeSavePersistsSanitizedScores(t *testing.T) {
	repo := &mockGradeRepo{}
	cache := &mockGradeCache{values: map[string][]models.CentralizerRow{"centralizer:c1": {}}}
	svc := newGradeService(repo, cache)

	req := validSave()
	req.Criteria = map[string][]string{"ser": {" puntualidad ", "respeto"}}
	req.Scores = map[string]map[string][]string{
		"a": {"ser": {"8", "abc", ""}},
		"b": {"ser": {"9"}},
	}
	require.NoError(t, svc.Save(context.Background(), req))

	require.Len(t, repo.savedCriteria, 1)
	assert.Equal(t, []string{"PUNTUALIDAD", "RESPETO"}, []string(repo.savedCriteria[0].Titles))
	assert.Equal(t, models.DimensionSer, repo.savedCriteria[0].Dimension)

	require.Len(t, repo.savedGrades, 1, "withdrawn students are not written")
	assert.Equal(t, "a", repo.savedGrades[0].StudentID)
	assert.Equal(t, []float64{8, 0, 0}, []float64(repo.savedGrades[0].Scores), "unparseable entries persist as zero")

	assert.Equal(t, []string{"centralizer:c1"}, cache.deleted)
}

func TestGradeGetComputesWeightedAndFinal(t *testing.T) {
	repo := &mockGradeRepo{
		criteria: []models.GradingCriteria{
			{CourseID: "c1", Trimester: 1, Dimension: models.DimensionSer, Titles: []string{"PUNTUALIDAD"}},
		},
		grades: []models.StudentGrade{
			{StudentID: "a", Trimester: 1, Dimension: models.DimensionSer, Scores: []float64{8, 9, 10}},
			{StudentID: "a", Trimester: 1, Dimension: models.DimensionSaber, Scores: []float64{43}},
			{StudentID: "a", Trimester: 1, Dimension: models.DimensionHacer, Scores: []float64{36}},
			{StudentID: "a", Trimester: 1, Dimension: models.DimensionAuto, Scores: []float64{5}},
		},
	}
	svc := newGradeService(repo, &mockGradeCache{})

	sheet, err := svc.Get(context.Background(), GetGradesRequest{TeacherID: "t1", CourseLabel: "1RO A", Trimester: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"PUNTUALIDAD"}, sheet.Criteria[models.DimensionSer])

	require.Len(t, sheet.Students, 2)
	ana := sheet.Students[0]
	assert.Equal(t, "a", ana.Student.ID)
	assert.Equal(t, 9, ana.Weighted[models.DimensionSer])
	assert.Equal(t, 93, ana.Final)
	assert.True(t, ana.Passing)

	bruno := sheet.Students[1]
	assert.Equal(t, 0, bruno.Final, "no stored scores yields zero")
	assert.False(t, bruno.Passing)
}

func TestGradeImportScoresIndexesLinesByRosterPosition(t *testing.T) {
	roster := &mockRosterRepo{students: []models.Student{
		{ID: "a", RegisterNumber: 1, FullName: "ANA", Status: models.StudentStatusActive},
		{ID: "b", RegisterNumber: 2, FullName: "BRUNO", Status: models.StudentStatusWithdrawn},
		{ID: "c", RegisterNumber: 3, FullName: "CARLA", Status: models.StudentStatusActive},
	}}
	svc := NewGradeService(&mockGradeRepo{}, roster, &mockCourseFinder{course: testCourse()}, &mockGradeCache{}, time.Minute, validator.New(), zap.NewNop())

	cells, err := svc.ImportScores(context.Background(), ImportScoresRequest{
		TeacherID: "t1", CourseLabel: "1RO A", Trimester: 1, Dimension: "ser", Column: "8\n20\n30",
	})
	require.NoError(t, err)
	require.Len(t, cells, 2, "withdrawn students get no cell")
	assert.Equal(t, "a", cells[0].StudentID)
	assert.Equal(t, "8", cells[0].Values[0])
	assert.Equal(t, "c", cells[1].StudentID)
	assert.Equal(t, "10", cells[1].Values[0], "the withdrawn line is discarded and the third line capped")
}

func TestGradeImportScoresSanitizesColumns(t *testing.T) {
	svc := newGradeService(&mockGradeRepo{}, &mockGradeCache{})

	req := ImportScoresRequest{TeacherID: "t1", CourseLabel: "1RO A", Trimester: 1, Dimension: "ser", Column: "0\tabc\t9.5\t7"}
	cells, err := svc.ImportScores(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	require.Len(t, cells[0].Values, 3, "columns beyond the criteria count are dropped")
	assert.Empty(t, cells[0].Values[0], "zero comes back blank")
	assert.Equal(t, "abc", cells[0].Values[1], "unparseable text stays as typed")
	assert.Equal(t, "9.5", cells[0].Values[2])

	req.Dimension = "otro"
	_, err = svc.ImportScores(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestGradeReportCards(t *testing.T) {
	repo := &mockGradeRepo{grades: []models.StudentGrade{
		{StudentID: "a", Trimester: 1, Dimension: models.DimensionSaber, Scores: []float64{40, 44}},
		{StudentID: "a", Trimester: 2, Dimension: models.DimensionSaber, Scores: []float64{45}},
	}}
	svc := newGradeService(repo, &mockGradeCache{})

	rows, err := svc.ReportCards(context.Background(), "t1", "1RO A")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ana := rows[0]
	assert.Equal(t, 42, ana.Notes[1]["SABER"])
	assert.Equal(t, 45, ana.Notes[2]["SABER"])
	assert.Equal(t, 0, ana.Notes[3]["SER"])
}

func TestGradeCentralizer(t *testing.T) {
	repo := &mockGradeRepo{grades: []models.StudentGrade{
		{StudentID: "a", Trimester: 1, Dimension: models.DimensionSer, Scores: []float64{8}},
		{StudentID: "a", Trimester: 1, Dimension: models.DimensionSaber, Scores: []float64{40, 44}},
		{StudentID: "a", Trimester: 1, Dimension: models.DimensionHacer, Scores: []float64{30}},
		{StudentID: "a", Trimester: 1, Dimension: models.DimensionAuto, Scores: []float64{4}},
		{StudentID: "a", Trimester: 2, Dimension: models.DimensionSaber, Scores: []float64{45}},
	}}
	cache := &mockGradeCache{}
	svc := newGradeService(repo, cache)

	rows, err := svc.Centralizer(context.Background(), "t1", "1RO A")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ana := rows[0]
	assert.Equal(t, 84, ana.Trimester1)
	assert.Equal(t, 45, ana.Trimester2)
	assert.Equal(t, 0, ana.Trimester3)
	assert.Equal(t, 43, ana.Annual, "divisor stays three with missing trimesters")

	bruno := rows[1]
	assert.Equal(t, models.StudentStatusWithdrawn, bruno.Status)
	assert.Equal(t, 0, bruno.Annual)

	// second call is served from cache
	again, err := svc.Centralizer(context.Background(), "t1", "1RO A")
	require.NoError(t, err)
	assert.Equal(t, rows, again)
	assert.Equal(t, 1, repo.courseListCalls)
}
