package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// CourseRepo defines the persistence operations the course service needs.
type CourseRepo interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.Course, error)
	FindByLabel(ctx context.Context, teacherID, label string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	DeleteByLabel(ctx context.Context, teacherID, label string) error
	ListStudentsByCourseLabel(ctx context.Context, teacherID, label string) ([]models.StudentRef, error)
}

// CreateCourseRequest opens a new class group. The label is split on its
// first space into grade and parallel ("1RO A" -> grade 1RO, parallel A).
type CreateCourseRequest struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	Label     string `json:"label" validate:"required"`
}

// CourseService exposes a teacher's class groups.
type CourseService struct {
	repo     CourseRepo
	validate *validator.Validate
	logger   *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo CourseRepo, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, validate: validate, logger: logger}
}

// List returns the teacher's courses.
func (s *CourseService) List(ctx context.Context, teacherID string) ([]models.Course, error) {
	courses, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list courses")
	}
	return courses, nil
}

// Create opens a new course for the teacher. The label must carry a grade
// and a parallel and must not collide with an existing course.
func (s *CourseService) Create(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	label := strings.ToUpper(strings.Join(strings.Fields(req.Label), " "))
	grade, parallel, ok := strings.Cut(label, " ")
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "course label needs a grade and a parallel")
	}
	existing, err := s.repo.FindByLabel(ctx, req.TeacherID, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check course label")
	}
	if existing != nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "course already exists")
	}
	course := &models.Course{
		TeacherID: req.TeacherID,
		Grade:     grade,
		Parallel:  parallel,
		Label:     label,
	}
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create course")
	}
	return course, nil
}

// Delete removes a course and its roster.
func (s *CourseService) Delete(ctx context.Context, teacherID, label string) error {
	if teacherID == "" || label == "" {
		return appErrors.Clone(appErrors.ErrValidation, "teacher and course label are required")
	}
	course, err := s.repo.FindByLabel(ctx, teacherID, label)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}
	if course == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	if err := s.repo.DeleteByLabel(ctx, teacherID, label); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

// Resolve finds the course a teacher refers to by label.
func (s *CourseService) Resolve(ctx context.Context, teacherID, label string) (*models.Course, error) {
	course, err := s.repo.FindByLabel(ctx, teacherID, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// ListStudents returns the roster projection of a course by label.
func (s *CourseService) ListStudents(ctx context.Context, teacherID, label string) ([]models.StudentRef, error) {
	students, err := s.repo.ListStudentsByCourseLabel(ctx, teacherID, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list course students")
	}
	return students, nil
}
