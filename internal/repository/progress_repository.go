package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/registro-docente/api/internal/models"
)

// ProgressRow joins a progress record with its course label for listings.
type ProgressRow struct {
	models.CurricularProgress
	CourseLabel string `db:"course_label"`
}

// ProgressRepository manages persistence for curricular progress counters.
type ProgressRepository struct {
	db *sqlx.DB
}

// NewProgressRepository constructs a ProgressRepository.
func NewProgressRepository(db *sqlx.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// ListByTeacher returns progress rows for every course of a teacher.
func (r *ProgressRepository) ListByTeacher(ctx context.Context, teacherID string) ([]ProgressRow, error) {
	const query = `SELECT p.id, p.course_id, p.trimester, p.planned, p.developed, c.label AS course_label
        FROM curricular_progress p
        JOIN courses c ON c.id = p.course_id
        WHERE c.teacher_id = $1
        ORDER BY c.label, p.trimester`
	var rows []ProgressRow
	if err := r.db.SelectContext(ctx, &rows, query, teacherID); err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	return rows, nil
}

// Upsert writes one trimester's counters keyed by (course, trimester).
func (r *ProgressRepository) Upsert(ctx context.Context, progress *models.CurricularProgress) error {
	if progress.ID == "" {
		progress.ID = uuid.NewString()
	}
	const query = `INSERT INTO curricular_progress (id, course_id, trimester, planned, developed)
        VALUES (:id, :course_id, :trimester, :planned, :developed)
        ON CONFLICT (course_id, trimester) DO UPDATE SET planned = EXCLUDED.planned, developed = EXCLUDED.developed`
	if _, err := r.db.NamedExecContext(ctx, query, progress); err != nil {
		return fmt.Errorf("upsert progress: %w", err)
	}
	return nil
}
