package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/registro-docente/api/internal/models"
)

// GradeRepository manages persistence for grading criteria and scores.
type GradeRepository struct {
	db *sqlx.DB
}

// NewGradeRepository constructs a GradeRepository.
func NewGradeRepository(db *sqlx.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

// ListCriteria returns the criterion titles of a course trimester.
func (r *GradeRepository) ListCriteria(ctx context.Context, courseID string, trimester int) ([]models.GradingCriteria, error) {
	const query = `SELECT id, course_id, trimester, dimension, titles
        FROM grading_criteria WHERE course_id = $1 AND trimester = $2`
	var criteria []models.GradingCriteria
	if err := r.db.SelectContext(ctx, &criteria, query, courseID, trimester); err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}
	return criteria, nil
}

// UpsertCriteria writes criterion titles keyed by (course, trimester, dimension).
func (r *GradeRepository) UpsertCriteria(ctx context.Context, criteria []models.GradingCriteria) error {
	if len(criteria) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin criteria upsert: %w", err)
	}
	defer tx.Rollback()

	const query = `INSERT INTO grading_criteria (id, course_id, trimester, dimension, titles)
        VALUES (:id, :course_id, :trimester, :dimension, :titles)
        ON CONFLICT (course_id, trimester, dimension) DO UPDATE SET titles = EXCLUDED.titles`
	for i := range criteria {
		if criteria[i].ID == "" {
			criteria[i].ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, query, criteria[i]); err != nil {
			return fmt.Errorf("upsert criteria %s: %w", criteria[i].Dimension, err)
		}
	}
	return tx.Commit()
}

// ListGrades returns the score rows of a course's students for one trimester.
func (r *GradeRepository) ListGrades(ctx context.Context, courseID string, trimester int) ([]models.StudentGrade, error) {
	const query = `SELECT g.id, g.student_id, g.trimester, g.dimension, g.scores
        FROM student_grades g
        JOIN students s ON s.id = g.student_id
        WHERE s.course_id = $1 AND g.trimester = $2`
	var grades []models.StudentGrade
	if err := r.db.SelectContext(ctx, &grades, query, courseID, trimester); err != nil {
		return nil, fmt.Errorf("list grades: %w", err)
	}
	return grades, nil
}

// ListGradesByCourse returns every score row of a course across all three
// trimesters, for the annual overview.
func (r *GradeRepository) ListGradesByCourse(ctx context.Context, courseID string) ([]models.StudentGrade, error) {
	const query = `SELECT g.id, g.student_id, g.trimester, g.dimension, g.scores
        FROM student_grades g
        JOIN students s ON s.id = g.student_id
        WHERE s.course_id = $1`
	var grades []models.StudentGrade
	if err := r.db.SelectContext(ctx, &grades, query, courseID); err != nil {
		return nil, fmt.Errorf("list grades by course: %w", err)
	}
	return grades, nil
}

// UpsertGrades writes score rows keyed by (student, trimester, dimension).
func (r *GradeRepository) UpsertGrades(ctx context.Context, grades []models.StudentGrade) error {
	if len(grades) == 0 {
		return nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin grade upsert: %w", err)
	}
	defer tx.Rollback()

	const query = `INSERT INTO student_grades (id, student_id, trimester, dimension, scores)
        VALUES (:id, :student_id, :trimester, :dimension, :scores)
        ON CONFLICT (student_id, trimester, dimension) DO UPDATE SET scores = EXCLUDED.scores`
	for i := range grades {
		if grades[i].ID == "" {
			grades[i].ID = uuid.NewString()
		}
		if _, err := tx.NamedExecContext(ctx, query, grades[i]); err != nil {
			return fmt.Errorf("upsert grade for %s: %w", grades[i].StudentID, err)
		}
	}
	return tx.Commit()
}
