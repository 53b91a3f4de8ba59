package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/grading"
	"github.com/registro-docente/api/internal/models"
	"github.com/registro-docente/api/internal/repository"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// ProgressRepo defines the persistence operations the progress service needs.
type ProgressRepo interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]repository.ProgressRow, error)
	Upsert(ctx context.Context, progress *models.CurricularProgress) error
}

// SaveProgressRequest writes one trimester's topic counters for a course.
type SaveProgressRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	Trimester   int    `json:"trimester" validate:"required,min=1,max=3"`
	Planned     int    `json:"planned" validate:"min=0"`
	Developed   int    `json:"developed" validate:"min=0"`
}

// ProgressOverview groups per-course progress with the global aggregate.
type ProgressOverview struct {
	Courses []models.CourseProgress `json:"courses"`
	Global  models.GlobalProgress   `json:"global"`
}

// ProgressService tracks planned versus developed curriculum topics.
type ProgressService struct {
	progress ProgressRepo
	courses  RosterCourseRepo
	validate *validator.Validate
	logger   *zap.Logger
}

// NewProgressService constructs a ProgressService.
func NewProgressService(progress ProgressRepo, courses RosterCourseRepo, validate *validator.Validate, logger *zap.Logger) *ProgressService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{progress: progress, courses: courses, validate: validate, logger: logger}
}

// Overview derives per-course and global percentages from the stored
// counters. The global figure sums topics across courses before dividing, so
// large courses weigh more than small ones.
func (s *ProgressService) Overview(ctx context.Context, teacherID string) (*ProgressOverview, error) {
	rows, err := s.progress.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load progress")
	}

	byCourse := make(map[string]*models.CourseProgress)
	var order []string
	totalPlanned, totalDeveloped := 0, 0
	for _, row := range rows {
		cp, ok := byCourse[row.CourseID]
		if !ok {
			cp = &models.CourseProgress{CourseID: row.CourseID, CourseLabel: row.CourseLabel}
			byCourse[row.CourseID] = cp
			order = append(order, row.CourseID)
		}
		tp := models.TrimesterProgress{
			Planned:      row.Planned,
			Developed:    row.Developed,
			PctDeveloped: grading.ProgressPct(row.Planned, row.Developed),
		}
		switch row.Trimester {
		case 1:
			cp.Trimester1 = tp
		case 2:
			cp.Trimester2 = tp
		case 3:
			cp.Trimester3 = tp
		}
		totalPlanned += row.Planned
		totalDeveloped += row.Developed
	}

	overview := &ProgressOverview{
		Global: models.GlobalProgress{
			Planned:      totalPlanned,
			Developed:    totalDeveloped,
			PctDeveloped: grading.ProgressPct(totalPlanned, totalDeveloped),
		},
	}
	for _, id := range order {
		overview.Courses = append(overview.Courses, *byCourse[id])
	}
	return overview, nil
}

// Save writes one trimester's counters for a course.
func (s *ProgressService) Save(ctx context.Context, req SaveProgressRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid progress payload")
	}
	course, err := s.courses.FindByLabel(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}
	if course == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	record := &models.CurricularProgress{
		CourseID:  course.ID,
		Trimester: req.Trimester,
		Planned:   req.Planned,
		Developed: req.Developed,
	}
	if err := s.progress.Upsert(ctx, record); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save progress")
	}
	return nil
}
