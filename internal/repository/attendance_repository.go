package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/registro-docente/api/internal/models"
)

// AttendanceRepository manages persistence for attendance marks.
type AttendanceRepository struct {
	db *sqlx.DB
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// ListByCourseAndRange returns every mark of a course's students between two
// dates, inclusive.
func (r *AttendanceRepository) ListByCourseAndRange(ctx context.Context, courseID string, from, to time.Time) ([]models.AttendanceMark, error) {
	const query = `SELECT a.id, a.student_id, a.date, a.status
        FROM attendance a
        JOIN students s ON s.id = a.student_id
        WHERE s.course_id = $1 AND a.date >= $2 AND a.date <= $3
        ORDER BY a.date, a.student_id`
	var marks []models.AttendanceMark
	if err := r.db.SelectContext(ctx, &marks, query, courseID, from, to); err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return marks, nil
}

// UpsertBatch writes marks in one transaction, keyed by (student, date).
func (r *AttendanceRepository) UpsertBatch(ctx context.Context, marks []models.AttendanceMark) error {
	if len(marks) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attendance upsert: %w", err)
	}
	defer tx.Rollback()

	const query = `INSERT INTO attendance (id, student_id, date, status)
        VALUES (:id, :student_id, :date, :status)
        ON CONFLICT (student_id, date) DO UPDATE SET status = EXCLUDED.status`
	for i := range marks {
		if marks[i].ID == "" {
			marks[i].ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, query, marks[i]); err != nil {
			return fmt.Errorf("upsert attendance for %s: %w", marks[i].StudentID, err)
		}
	}
	return tx.Commit()
}

// DeleteByStudentsAndDates removes marks for the given students on the given
// dates. Used when a day is disabled for the whole course.
func (r *AttendanceRepository) DeleteByStudentsAndDates(ctx context.Context, studentIDs []string, dates []time.Time) error {
	if len(studentIDs) == 0 || len(dates) == 0 {
		return nil
	}
	const query = `DELETE FROM attendance WHERE student_id = ANY($1) AND date = ANY($2)`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(studentIDs), pq.Array(dates)); err != nil {
		return fmt.Errorf("delete attendance: %w", err)
	}
	return nil
}
