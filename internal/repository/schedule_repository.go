package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/registro-docente/api/internal/models"
)

// ScheduleRepository manages persistence for weekly timetable entries.
type ScheduleRepository struct {
	db *sqlx.DB
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ListByTeacher returns the teacher's timetable ordered by day and start time.
func (r *ScheduleRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.ScheduleEntry, error) {
	const query = `SELECT id, teacher_id, day_of_week, start_time, end_time, course_label, subject, created_at
        FROM schedule_entries WHERE teacher_id = $1 ORDER BY day_of_week, start_time`
	var entries []models.ScheduleEntry
	if err := r.db.SelectContext(ctx, &entries, query, teacherID); err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	return entries, nil
}

// Create inserts a new timetable entry.
func (r *ScheduleRepository) Create(ctx context.Context, entry *models.ScheduleEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO schedule_entries (id, teacher_id, day_of_week, start_time, end_time, course_label, subject, created_at)
        VALUES (:id, :teacher_id, :day_of_week, :start_time, :end_time, :course_label, :subject, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("create schedule entry: %w", err)
	}
	return nil
}

// Update modifies an existing timetable entry.
func (r *ScheduleRepository) Update(ctx context.Context, entry *models.ScheduleEntry) error {
	const query = `UPDATE schedule_entries SET day_of_week = :day_of_week, start_time = :start_time,
        end_time = :end_time, course_label = :course_label, subject = :subject
        WHERE id = :id AND teacher_id = :teacher_id`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("update schedule entry: %w", err)
	}
	return nil
}

// Delete removes a timetable entry of a teacher.
func (r *ScheduleRepository) Delete(ctx context.Context, teacherID, id string) error {
	const query = `DELETE FROM schedule_entries WHERE id = $1 AND teacher_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, teacherID); err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	return nil
}
