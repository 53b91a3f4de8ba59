package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/grading"
	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// AttendanceRepo defines the persistence operations the attendance service needs.
type AttendanceRepo interface {
	ListByCourseAndRange(ctx context.Context, courseID string, from, to time.Time) ([]models.AttendanceMark, error)
	UpsertBatch(ctx context.Context, marks []models.AttendanceMark) error
	DeleteByStudentsAndDates(ctx context.Context, studentIDs []string, dates []time.Time) error
}

// AttendanceStudentRepo loads the roster an attendance sheet is built from.
type AttendanceStudentRepo interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Student, error)
}

// GetAttendanceRequest scopes an attendance sheet to one course month.
// Trimester zero means unscoped; otherwise days outside the trimester window
// are excluded.
type GetAttendanceRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	Year        int    `json:"year" validate:"required,min=2000"`
	Month       int    `json:"month" validate:"required,min=1,max=12"`
	Trimester   int    `json:"trimester" validate:"min=0,max=3"`
}

// SaveAttendanceRequest persists one month's staged attendance state.
// EnabledDays lists the days that should carry rows after saving; eligible
// days absent from it are wiped for the whole course. Marks maps student ID
// to day to status; a missing entry on an enabled day defaults to present.
type SaveAttendanceRequest struct {
	TeacherID   string                    `json:"teacher_id" validate:"required"`
	CourseLabel string                    `json:"course_label" validate:"required"`
	Year        int                       `json:"year" validate:"required,min=2000"`
	Month       int                       `json:"month" validate:"required,min=1,max=12"`
	Trimester   int                       `json:"trimester" validate:"min=0,max=3"`
	EnabledDays []int                     `json:"enabled_days"`
	Marks       map[string]map[int]string `json:"marks"`
}

// AttendanceMonth is the assembled sheet for one course month. Months lists
// the selectable months of the requested trimester.
type AttendanceMonth struct {
	Students []models.StudentRef                        `json:"students"`
	Days     []models.WorkingDay                        `json:"days"`
	Marks    map[string]map[int]models.AttendanceStatus `json:"marks"`
	Months   []int                                      `json:"months,omitempty"`
}

// AttendanceService assembles and persists monthly attendance sheets.
type AttendanceService struct {
	attendance AttendanceRepo
	students   AttendanceStudentRepo
	courses    RosterCourseRepo
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(attendance AttendanceRepo, students AttendanceStudentRepo, courses RosterCourseRepo, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{attendance: attendance, students: students, courses: courses, validate: validate, logger: logger}
}

// GetMonth loads a course month: the roster, the eligible working days with
// their enabled flags, and the persisted marks. A day is enabled when at
// least one of its rows exists.
func (s *AttendanceService) GetMonth(ctx context.Context, req GetAttendanceRequest) (*AttendanceMonth, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance query")
	}
	course, students, err := s.loadCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return nil, err
	}

	month := time.Month(req.Month)
	days := grading.WorkingDays(req.Year, month, req.Trimester)
	marks, err := s.loadMarks(ctx, course.ID, req.Year, month)
	if err != nil {
		return nil, err
	}

	enabled := make(map[int]bool)
	for _, byDay := range marks {
		for day := range byDay {
			enabled[day] = true
		}
	}
	for i := range days {
		days[i].Enabled = enabled[days[i].Day]
	}

	refs := make([]models.StudentRef, 0, len(students))
	for _, st := range students {
		refs = append(refs, models.StudentRef{ID: st.ID, RegisterNumber: st.RegisterNumber, FullName: st.FullName, Status: st.Status})
	}
	var months []int
	for _, m := range grading.TrimesterMonths(req.Trimester) {
		months = append(months, int(m))
	}
	return &AttendanceMonth{Students: refs, Days: days, Marks: marks, Months: months}, nil
}

// Save applies the staged month state. Eligible days left out of EnabledDays
// are wiped for every student of the course, withdrawn ones included, so a
// disabled day leaves no trace. Marks are then written for each active
// student on each enabled day; a day re-enabled after a wipe starts over at
// present for everyone.
func (s *AttendanceService) Save(ctx context.Context, req SaveAttendanceRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid attendance payload")
	}
	for _, byDay := range req.Marks {
		for _, status := range byDay {
			if !models.AttendanceStatus(status).Valid() {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown attendance status %q", status))
			}
		}
	}

	_, students, err := s.loadCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return err
	}

	month := time.Month(req.Month)
	eligible := grading.WorkingDays(req.Year, month, req.Trimester)
	enabled := make(map[int]bool, len(req.EnabledDays))
	for _, day := range req.EnabledDays {
		enabled[day] = true
	}

	var wipeDates []time.Time
	for _, day := range eligible {
		if !enabled[day.Day] {
			wipeDates = append(wipeDates, time.Date(req.Year, month, day.Day, 0, 0, 0, 0, time.UTC))
		}
	}
	allIDs := make([]string, 0, len(students))
	for _, st := range students {
		allIDs = append(allIDs, st.ID)
	}
	if err := s.attendance.DeleteByStudentsAndDates(ctx, allIDs, wipeDates); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear disabled days")
	}

	var upserts []models.AttendanceMark
	for _, st := range students {
		if st.Status != models.StudentStatusActive {
			continue
		}
		for _, day := range eligible {
			if !enabled[day.Day] {
				continue
			}
			status := models.AttendancePresent
			if byDay, ok := req.Marks[st.ID]; ok {
				if raw, ok := byDay[day.Day]; ok {
					status = models.AttendanceStatus(raw)
				}
			}
			upserts = append(upserts, models.AttendanceMark{
				StudentID: st.ID,
				Date:      time.Date(req.Year, month, day.Day, 0, 0, 0, 0, time.UTC),
				Status:    status,
			})
		}
	}
	if err := s.attendance.UpsertBatch(ctx, upserts); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save attendance")
	}

	s.logger.Info("attendance saved",
		zap.String("course", req.CourseLabel),
		zap.Int("month", req.Month),
		zap.Int("marks", len(upserts)),
		zap.Int("wiped_days", len(wipeDates)))
	return nil
}

// Tallies counts present and absent marks per student over the enabled days
// of the month scope.
func (s *AttendanceService) Tallies(ctx context.Context, req GetAttendanceRequest) ([]models.AttendanceTally, error) {
	sheet, err := s.GetMonth(ctx, req)
	if err != nil {
		return nil, err
	}
	var days []int
	for _, d := range sheet.Days {
		if d.Enabled {
			days = append(days, d.Day)
		}
	}
	tallies := make([]models.AttendanceTally, 0, len(sheet.Students))
	for _, st := range sheet.Students {
		present, absent := grading.Tally(days, sheet.Marks[st.ID])
		tallies = append(tallies, models.AttendanceTally{StudentID: st.ID, Present: present, Absent: absent})
	}
	return tallies, nil
}

func (s *AttendanceService) loadCourse(ctx context.Context, teacherID, label string) (*models.Course, []models.Student, error) {
	course, err := s.courses.FindByLabel(ctx, teacherID, label)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}
	if course == nil {
		return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	students, err := s.students.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	return course, students, nil
}

func (s *AttendanceService) loadMarks(ctx context.Context, courseID string, year int, month time.Month) (map[string]map[int]models.AttendanceStatus, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month, grading.DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	rows, err := s.attendance.ListByCourseAndRange(ctx, courseID, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load attendance")
	}
	marks := make(map[string]map[int]models.AttendanceStatus)
	for _, row := range rows {
		byDay, ok := marks[row.StudentID]
		if !ok {
			byDay = make(map[int]models.AttendanceStatus)
			marks[row.StudentID] = byDay
		}
		byDay[row.Date.Day()] = row.Status
	}
	return marks, nil
}
