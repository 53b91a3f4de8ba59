package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// ScheduleRepo defines the persistence operations the schedule service needs.
type ScheduleRepo interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.ScheduleEntry, error)
	Create(ctx context.Context, entry *models.ScheduleEntry) error
	Update(ctx context.Context, entry *models.ScheduleEntry) error
	Delete(ctx context.Context, teacherID, id string) error
}

// SaveScheduleEntryRequest creates or updates one timetable block. An entry
// with an ID updates in place; without one it is inserted. Times use HH:MM.
type SaveScheduleEntryRequest struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacher_id" validate:"required"`
	DayOfWeek   int    `json:"day_of_week" validate:"required,min=1,max=5"`
	StartTime   string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string `json:"end_time" validate:"required,datetime=15:04"`
	CourseLabel string `json:"course_label" validate:"required"`
	Subject     string `json:"subject" validate:"required"`
}

// ScheduleService manages the teacher's weekly timetable. Overlap between
// blocks is deliberately not checked; split-group lessons share a slot.
type ScheduleService struct {
	repo     ScheduleRepo
	validate *validator.Validate
	logger   *zap.Logger
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(repo ScheduleRepo, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, validate: validate, logger: logger}
}

// List returns the teacher's timetable.
func (s *ScheduleService) List(ctx context.Context, teacherID string) ([]models.ScheduleEntry, error) {
	entries, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list schedule")
	}
	return entries, nil
}

// Save creates or updates one timetable block.
func (s *ScheduleService) Save(ctx context.Context, req SaveScheduleEntryRequest) (*models.ScheduleEntry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule payload")
	}
	entry := &models.ScheduleEntry{
		ID:          req.ID,
		TeacherID:   req.TeacherID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CourseLabel: strings.ToUpper(strings.TrimSpace(req.CourseLabel)),
		Subject:     strings.ToUpper(strings.TrimSpace(req.Subject)),
	}
	var err error
	if entry.ID == "" {
		err = s.repo.Create(ctx, entry)
	} else {
		err = s.repo.Update(ctx, entry)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save schedule entry")
	}
	return entry, nil
}

// Delete removes one timetable block of a teacher.
func (s *ScheduleService) Delete(ctx context.Context, teacherID, id string) error {
	if teacherID == "" || id == "" {
		return appErrors.Clone(appErrors.ErrValidation, "teacher and entry id are required")
	}
	if err := s.repo.Delete(ctx, teacherID, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete schedule entry")
	}
	return nil
}
