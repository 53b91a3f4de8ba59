package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/grading"
	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

const birthDateLayout = "2006-01-02"

// RosterStudentRepo defines the persistence operations the roster service needs.
type RosterStudentRepo interface {
	ListByCourse(ctx context.Context, courseID string) ([]models.Student, error)
	UpsertBatch(ctx context.Context, students []models.Student) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

// RosterCourseRepo resolves course labels for roster operations.
type RosterCourseRepo interface {
	FindByLabel(ctx context.Context, teacherID, label string) (*models.Course, error)
}

// RosterRowRequest is one student row as submitted from the filiation screen.
// BirthDate uses YYYY-MM-DD; an empty or unparseable value clears the age.
type RosterRowRequest struct {
	ID                string `json:"id"`
	FullName          string `json:"full_name" validate:"required"`
	Gender            string `json:"gender"`
	NationalID        string `json:"ci"`
	RUDE              string `json:"rude"`
	BirthDate         string `json:"birth_date"`
	TutorName         string `json:"tutor_name"`
	TutorRelationship string `json:"tutor_relationship"`
	TutorPhone        string `json:"tutor_phone"`
	Status            string `json:"status" validate:"omitempty,oneof=ACTIVE WITHDRAWN"`
}

// SaveRosterRequest replaces the roster of a course with the submitted rows.
type SaveRosterRequest struct {
	TeacherID   string             `json:"teacher_id" validate:"required"`
	CourseLabel string             `json:"course_label" validate:"required"`
	Students    []RosterRowRequest `json:"students" validate:"dive"`
}

// ImportRosterRequest appends tab-separated rows to an existing roster.
type ImportRosterRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	Text        string `json:"text" validate:"required"`
}

// DeleteStudentRequest removes one persisted student from a roster.
type DeleteStudentRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	StudentID   string `json:"student_id" validate:"required"`
}

// RosterService reconciles submitted roster state against the store.
type RosterService struct {
	students RosterStudentRepo
	courses  RosterCourseRepo
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewRosterService constructs a RosterService.
func NewRosterService(students RosterStudentRepo, courses RosterCourseRepo, validate *validator.Validate, logger *zap.Logger) *RosterService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RosterService{students: students, courses: courses, validate: validate, logger: logger, now: time.Now}
}

// Get returns the roster of a course with ages recomputed from birth dates.
func (s *RosterService) Get(ctx context.Context, teacherID, courseLabel string) ([]models.Student, error) {
	course, err := s.resolveCourse(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, err
	}
	students, err := s.students.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}
	today := s.now().UTC()
	for i := range students {
		students[i].Age = grading.AgeAt(students[i].BirthDate, today)
	}
	return students, nil
}

// Save reconciles the submitted rows against the stored roster: rows are
// normalised and renumbered densely from one in submission order, then
// upserted; stored students missing from the submission are deleted.
func (s *RosterService) Save(ctx context.Context, req SaveRosterRequest) ([]models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid roster payload")
	}
	course, err := s.resolveCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return nil, err
	}

	existing, err := s.students.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	today := s.now().UTC()
	rows := make([]models.Student, 0, len(req.Students))
	submitted := make(map[string]struct{}, len(req.Students))
	for i, row := range req.Students {
		student := s.normalizeRow(row, course.ID, i+1, today)
		if student.ID != "" {
			submitted[student.ID] = struct{}{}
		}
		rows = append(rows, student)
	}

	var removed []string
	for _, prev := range existing {
		if _, ok := submitted[prev.ID]; !ok {
			removed = append(removed, prev.ID)
		}
	}

	if err := s.students.UpsertBatch(ctx, rows); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save roster")
	}
	if err := s.students.DeleteByIDs(ctx, removed); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to remove dropped students")
	}

	s.logger.Info("roster saved",
		zap.String("course", req.CourseLabel),
		zap.Int("students", len(rows)),
		zap.Int("removed", len(removed)))
	return rows, nil
}

// Delete removes one student. Rows that were never persisted have no ID and
// nothing to delete; remaining register numbers are recomputed on next save.
func (s *RosterService) Delete(ctx context.Context, req DeleteStudentRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid delete payload")
	}
	if _, err := s.resolveCourse(ctx, req.TeacherID, req.CourseLabel); err != nil {
		return err
	}
	if err := s.students.DeleteByIDs(ctx, []string{req.StudentID}); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}

// Import parses tab-separated rows, appends them to the stored roster and
// saves the combined list. Expected columns per line: full name, gender, ci,
// rude, birth date, tutor name, tutor relationship, tutor phone.
func (s *RosterService) Import(ctx context.Context, req ImportRosterRequest) ([]models.Student, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}
	parsed := ParseRosterImport(req.Text)
	if len(parsed) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no importable rows found")
	}

	existing, err := s.Get(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return nil, err
	}

	combined := make([]RosterRowRequest, 0, len(existing)+len(parsed))
	for _, st := range existing {
		combined = append(combined, rowFromStudent(st))
	}
	combined = append(combined, parsed...)

	return s.Save(ctx, SaveRosterRequest{
		TeacherID:   req.TeacherID,
		CourseLabel: req.CourseLabel,
		Students:    combined,
	})
}

// ParseRosterImport splits pasted spreadsheet text into roster rows. Lines
// without a name are skipped.
func ParseRosterImport(text string) []RosterRowRequest {
	var rows []RosterRowRequest
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		field := func(i int) string {
			if i < len(cols) {
				return strings.TrimSpace(cols[i])
			}
			return ""
		}
		if field(0) == "" {
			continue
		}
		rows = append(rows, RosterRowRequest{
			FullName:          field(0),
			Gender:            field(1),
			NationalID:        field(2),
			RUDE:              field(3),
			BirthDate:         field(4),
			TutorName:         field(5),
			TutorRelationship: field(6),
			TutorPhone:        field(7),
		})
	}
	return rows
}

func (s *RosterService) normalizeRow(row RosterRowRequest, courseID string, position int, today time.Time) models.Student {
	status := models.StudentStatus(row.Status)
	if status == "" {
		status = models.StudentStatusActive
	}
	student := models.Student{
		ID:                row.ID,
		CourseID:          courseID,
		RegisterNumber:    position,
		FullName:          strings.ToUpper(strings.TrimSpace(row.FullName)),
		Gender:            strings.ToUpper(strings.TrimSpace(row.Gender)),
		NationalID:        strings.TrimSpace(row.NationalID),
		RUDE:              strings.TrimSpace(row.RUDE),
		TutorName:         strings.ToUpper(strings.TrimSpace(row.TutorName)),
		TutorRelationship: strings.ToUpper(strings.TrimSpace(row.TutorRelationship)),
		TutorPhone:        strings.TrimSpace(row.TutorPhone),
		Status:            status,
	}
	if row.BirthDate != "" {
		if birth, err := time.Parse(birthDateLayout, row.BirthDate); err == nil {
			student.BirthDate = &birth
		}
	}
	student.Age = grading.AgeAt(student.BirthDate, today)
	return student
}

func (s *RosterService) resolveCourse(ctx context.Context, teacherID, label string) (*models.Course, error) {
	course, err := s.courses.FindByLabel(ctx, teacherID, label)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve course")
	}
	if course == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

func rowFromStudent(st models.Student) RosterRowRequest {
	row := RosterRowRequest{
		ID:                st.ID,
		FullName:          st.FullName,
		Gender:            st.Gender,
		NationalID:        st.NationalID,
		RUDE:              st.RUDE,
		TutorName:         st.TutorName,
		TutorRelationship: st.TutorRelationship,
		TutorPhone:        st.TutorPhone,
		Status:            string(st.Status),
	}
	if st.BirthDate != nil {
		row.BirthDate = st.BirthDate.Format(birthDateLayout)
	}
	return row
}
