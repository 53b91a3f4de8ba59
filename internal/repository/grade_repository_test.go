package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registro-docente/api/internal/models"
)

func TestGradeRepositoryListCriteria(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	rows := sqlmock.NewRows([]string{"id", "course_id", "trimester", "dimension", "titles"}).
		AddRow("cr1", "c1", 1, "ser", `{"PUNTUALIDAD","RESPETO"}`)
	mock.ExpectQuery("SELECT id, course_id, trimester, dimension, titles").
		WithArgs("c1", 1).
		WillReturnRows(rows)

	criteria, err := repo.ListCriteria(context.Background(), "c1", 1)
	require.NoError(t, err)
	require.Len(t, criteria, 1)
	assert.Equal(t, models.DimensionSer, criteria[0].Dimension)
	assert.Equal(t, []string{"PUNTUALIDAD", "RESPETO"}, []string(criteria[0].Titles))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryListGradesByCourse(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_id", "trimester", "dimension", "scores"}).
		AddRow("g1", "s1", 1, "saber", "{40,44.5}").
		AddRow("g2", "s1", 2, "saber", "{45}")
	mock.ExpectQuery("SELECT g.id, g.student_id, g.trimester, g.dimension, g.scores").
		WithArgs("c1").
		WillReturnRows(rows)

	grades, err := repo.ListGradesByCourse(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, []float64{40, 44.5}, []float64(grades[0].Scores))
	assert.Equal(t, 2, grades[1].Trimester)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryUpsertCriteria(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO grading_criteria").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	criteria := []models.GradingCriteria{
		{CourseID: "c1", Trimester: 1, Dimension: models.DimensionSer, Titles: []string{"PUNTUALIDAD"}},
	}
	require.NoError(t, repo.UpsertCriteria(context.Background(), criteria))
	assert.NotEmpty(t, criteria[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGradeRepositoryUpsertGrades(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewGradeRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO student_grades").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO student_grades").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	grades := []models.StudentGrade{
		{StudentID: "s1", Trimester: 1, Dimension: models.DimensionSer, Scores: []float64{8, 9}},
		{StudentID: "s1", Trimester: 1, Dimension: models.DimensionAuto, Scores: []float64{5}},
	}
	require.NoError(t, repo.UpsertGrades(context.Background(), grades))
	assert.NoError(t, mock.ExpectationsWereMet())
}
