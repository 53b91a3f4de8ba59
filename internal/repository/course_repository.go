package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/registro-docente/api/internal/models"
)

// CourseRepository manages persistence for a teacher's class groups.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// ListByTeacher returns the teacher's courses ordered by label.
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]models.Course, error) {
	const query = `SELECT id, teacher_id, grade, parallel, label, created_at
        FROM courses WHERE teacher_id = $1 ORDER BY label`
	var courses []models.Course
	if err := r.db.SelectContext(ctx, &courses, query, teacherID); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByLabel fetches one course of a teacher by its display label.
// Returns nil when the teacher has no course with that label.
func (r *CourseRepository) FindByLabel(ctx context.Context, teacherID, label string) (*models.Course, error) {
	const query = `SELECT id, teacher_id, grade, parallel, label, created_at
        FROM courses WHERE teacher_id = $1 AND label = $2`
	var course models.Course
	if err := r.db.GetContext(ctx, &course, query, teacherID, label); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find course by label: %w", err)
	}
	return &course, nil
}

// Create inserts a new course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO courses (id, teacher_id, grade, parallel, label, created_at)
        VALUES (:id, :teacher_id, :grade, :parallel, :label, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// DeleteByLabel removes a course of a teacher. Student rows cascade.
func (r *CourseRepository) DeleteByLabel(ctx context.Context, teacherID, label string) error {
	const query = `DELETE FROM courses WHERE teacher_id = $1 AND label = $2`
	if _, err := r.db.ExecContext(ctx, query, teacherID, label); err != nil {
		return fmt.Errorf("delete course by label: %w", err)
	}
	return nil
}

// ListStudentsByCourseLabel resolves the course and loads its roster
// projection in a single joined query, ordered by register number.
func (r *CourseRepository) ListStudentsByCourseLabel(ctx context.Context, teacherID, label string) ([]models.StudentRef, error) {
	const query = `SELECT s.id, s.register_number, s.full_name, s.status
        FROM students s
        JOIN courses c ON c.id = s.course_id
        WHERE c.teacher_id = $1 AND c.label = $2
        ORDER BY s.register_number`
	var students []models.StudentRef
	if err := r.db.SelectContext(ctx, &students, query, teacherID, label); err != nil {
		return nil, fmt.Errorf("list students by course label: %w", err)
	}
	return students, nil
}
