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

// StudentRepository manages persistence for roster rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByCourse returns the full roster of a course ordered by register number.
func (r *StudentRepository) ListByCourse(ctx context.Context, courseID string) ([]models.Student, error) {
	const query = `SELECT id, course_id, register_number, full_name, gender, ci, rude, birth_date, age,
        tutor_name, tutor_relationship, tutor_phone, status, created_at, updated_at
        FROM students WHERE course_id = $1 ORDER BY register_number`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, courseID); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// UpsertBatch writes a reconciled roster in one transaction. Rows without an
// ID get one assigned before insert; existing rows are updated in place.
func (r *StudentRepository) UpsertBatch(ctx context.Context, students []models.Student) error {
	if len(students) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin roster upsert: %w", err)
	}
	defer tx.Rollback()

	const query = `INSERT INTO students (id, course_id, register_number, full_name, gender, ci, rude, birth_date, age,
        tutor_name, tutor_relationship, tutor_phone, status, created_at, updated_at)
        VALUES (:id, :course_id, :register_number, :full_name, :gender, :ci, :rude, :birth_date, :age,
        :tutor_name, :tutor_relationship, :tutor_phone, :status, :created_at, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
        register_number = EXCLUDED.register_number, full_name = EXCLUDED.full_name, gender = EXCLUDED.gender,
        ci = EXCLUDED.ci, rude = EXCLUDED.rude, birth_date = EXCLUDED.birth_date, age = EXCLUDED.age,
        tutor_name = EXCLUDED.tutor_name, tutor_relationship = EXCLUDED.tutor_relationship,
        tutor_phone = EXCLUDED.tutor_phone, status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`

	now := time.Now().UTC()
	for i := range students {
		if students[i].ID == "" {
			students[i].ID = uuid.NewString()
		}
		if students[i].CreatedAt.IsZero() {
			students[i].CreatedAt = now
		}
		students[i].UpdatedAt = now
		if _, err := tx.NamedExecContext(ctx, query, students[i]); err != nil {
			return fmt.Errorf("upsert student %s: %w", students[i].ID, err)
		}
	}
	return tx.Commit()
}

// DeleteByIDs removes students no longer present in the reconciled roster.
// Attendance and grade rows cascade at the schema level.
func (r *StudentRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `DELETE FROM students WHERE id = ANY($1)`
	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("delete students: %w", err)
	}
	return nil
}
