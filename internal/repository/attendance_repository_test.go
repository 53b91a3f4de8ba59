package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registro-docente/api/internal/models"
)

func TestAttendanceRepositoryListByCourseAndRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "date", "status"}).
		AddRow("m1", "s1", from.AddDate(0, 0, 1), "P").
		AddRow("m2", "s1", from.AddDate(0, 0, 2), "F")
	mock.ExpectQuery("SELECT a.id, a.student_id, a.date, a.status").
		WithArgs("c1", from, to).
		WillReturnRows(rows)

	marks, err := repo.ListByCourseAndRange(context.Background(), "c1", from, to)
	require.NoError(t, err)
	require.Len(t, marks, 2)
	assert.Equal(t, models.AttendanceAbsent, marks[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryUpsertBatch(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO attendance").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO attendance").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	marks := []models.AttendanceMark{
		{StudentID: "s1", Date: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), Status: models.AttendancePresent},
		{StudentID: "s1", Date: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), Status: models.AttendanceAbsent},
	}
	require.NoError(t, repo.UpsertBatch(context.Background(), marks))
	assert.NotEmpty(t, marks[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryDeleteByStudentsAndDates(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	mock.ExpectExec("DELETE FROM attendance WHERE student_id = ANY").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 4))

	dates := []time.Time{time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.DeleteByStudentsAndDates(context.Background(), []string{"s1", "s2"}, dates))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttendanceRepositoryDeleteNoopOnEmptyInput(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewAttendanceRepository(db)

	require.NoError(t, repo.DeleteByStudentsAndDates(context.Background(), nil, []time.Time{time.Now()}))
	require.NoError(t, repo.DeleteByStudentsAndDates(context.Background(), []string{"s1"}, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
