package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/grading"
	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// GradeRepo defines the persistence operations the grade service needs.
type GradeRepo interface {
	ListCriteria(ctx context.Context, courseID string, trimester int) ([]models.GradingCriteria, error)
	UpsertCriteria(ctx context.Context, criteria []models.GradingCriteria) error
	ListGrades(ctx context.Context, courseID string, trimester int) ([]models.StudentGrade, error)
	ListGradesByCourse(ctx context.Context, courseID string) ([]models.StudentGrade, error)
	UpsertGrades(ctx context.Context, grades []models.StudentGrade) error
}

// GradeCache caches derived grade payloads.
type GradeCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// GetGradesRequest scopes a grade sheet to one course trimester.
type GetGradesRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	Trimester   int    `json:"trimester" validate:"required,min=1,max=3"`
}

// SaveGradesRequest persists criteria titles and raw scores for one course
// trimester. LoadedCourseLabel and LoadedTrimester identify the context the
// sheet was filled in under; a mismatch with the selected scope rejects the
// save so a stale sheet cannot overwrite another trimester's grades.
type SaveGradesRequest struct {
	TeacherID         string                         `json:"teacher_id" validate:"required"`
	CourseLabel       string                         `json:"course_label" validate:"required"`
	Trimester         int                            `json:"trimester" validate:"required,min=1,max=3"`
	LoadedCourseLabel string                         `json:"loaded_course_label" validate:"required"`
	LoadedTrimester   int                            `json:"loaded_trimester" validate:"required,min=1,max=3"`
	Criteria          map[string][]string            `json:"criteria"`
	Scores            map[string]map[string][]string `json:"scores"`
}

// ImportScoresRequest sanitizes a pasted score block for one dimension.
// Lines map onto the roster by position; a withdrawn student's line is
// discarded. Tab-separated columns within a line fill the dimension's
// criteria in order.
type ImportScoresRequest struct {
	TeacherID   string `json:"teacher_id" validate:"required"`
	CourseLabel string `json:"course_label" validate:"required"`
	Trimester   int    `json:"trimester" validate:"required,min=1,max=3"`
	Dimension   string `json:"dimension" validate:"required"`
	Column      string `json:"column" validate:"required"`
}

// ScoreImportCell holds the sanitized criterion values of one pasted line.
type ScoreImportCell struct {
	StudentID string   `json:"student_id"`
	Values    []string `json:"values"`
}

// StudentGradeView is one computed row of the grade sheet.
type StudentGradeView struct {
	Student  models.StudentRef              `json:"student"`
	Scores   map[models.Dimension][]float64 `json:"scores"`
	Weighted map[models.Dimension]int       `json:"weighted"`
	Final    int                            `json:"final"`
	Passing  bool                           `json:"passing"`
}

// GradeSheet is the assembled grading view for one course trimester.
type GradeSheet struct {
	Criteria map[models.Dimension][]string `json:"criteria"`
	Students []StudentGradeView            `json:"students"`
}

// GradeService persists grading criteria and scores and derives trimester
// and annual results.
type GradeService struct {
	grades   GradeRepo
	students AttendanceStudentRepo
	courses  RosterCourseRepo
	cache    GradeCache
	cacheTTL time.Duration
	validate *validator.Validate
	logger   *zap.Logger
}

// NewGradeService constructs a GradeService.
func NewGradeService(grades GradeRepo, students AttendanceStudentRepo, courses RosterCourseRepo, cache GradeCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *GradeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GradeService{grades: grades, students: students, courses: courses, cache: cache, cacheTTL: cacheTTL, validate: validate, logger: logger}
}

// Get assembles the grade sheet of a course trimester: criteria titles,
// stored scores, and the weighted and final results computed from them.
func (s *GradeService) Get(ctx context.Context, req GetGradesRequest) (*GradeSheet, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade query")
	}
	course, students, err := s.loadCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return nil, err
	}

	criteria, err := s.grades.ListCriteria(ctx, course.ID, req.Trimester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load criteria")
	}
	rows, err := s.grades.ListGrades(ctx, course.ID, req.Trimester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	sheet := &GradeSheet{Criteria: make(map[models.Dimension][]string, len(criteria))}
	for _, c := range criteria {
		sheet.Criteria[c.Dimension] = c.Titles
	}

	byStudent := make(map[string]map[models.Dimension][]float64)
	for _, row := range rows {
		dims, ok := byStudent[row.StudentID]
		if !ok {
			dims = make(map[models.Dimension][]float64)
			byStudent[row.StudentID] = dims
		}
		dims[row.Dimension] = row.Scores
	}

	for _, st := range students {
		view := StudentGradeView{
			Student:  models.StudentRef{ID: st.ID, RegisterNumber: st.RegisterNumber, FullName: st.FullName, Status: st.Status},
			Scores:   byStudent[st.ID],
			Weighted: make(map[models.Dimension]int, len(models.Dimensions)),
		}
		for _, dim := range models.Dimensions {
			view.Weighted[dim] = grading.WeightedStored(byStudent[st.ID][dim], dim)
		}
		view.Final = grading.FinalGrade(view.Weighted)
		view.Passing = grading.IsPassing(view.Final)
		sheet.Students = append(sheet.Students, view)
	}
	return sheet, nil
}

// Save validates and persists a trimester's criteria and scores, then drops
// the cached annual overview of the course. Withdrawn students are skipped;
// unparseable score entries are stored as zero.
func (s *GradeService) Save(ctx context.Context, req SaveGradesRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid grade payload")
	}
	if req.LoadedCourseLabel != req.CourseLabel || req.LoadedTrimester != req.Trimester {
		return appErrors.Clone(appErrors.ErrStaleContext, "grade sheet was loaded for a different course or trimester")
	}

	course, students, err := s.loadCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return err
	}

	criteria, err := s.buildCriteria(course.ID, req)
	if err != nil {
		return err
	}
	grades, err := s.buildGrades(students, req)
	if err != nil {
		return err
	}

	if err := s.grades.UpsertCriteria(ctx, criteria); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save criteria")
	}
	if err := s.grades.UpsertGrades(ctx, grades); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save grades")
	}
	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, centralizerKey(course.ID)); err != nil {
			s.logger.Warn("failed to invalidate centralizer cache", zap.Error(err))
		}
	}

	s.logger.Info("grades saved",
		zap.String("course", req.CourseLabel),
		zap.Int("trimester", req.Trimester),
		zap.Int("students", len(req.Scores)))
	return nil
}

// ImportScores turns a pasted block of values into sanitized cells for the
// active students of a course. Lines are matched to students by roster
// position, so a withdrawn student's line is thrown away rather than shifted
// to the next student. Zeros come back blank and values above the dimension
// cap are lowered to it; other text stays as typed.
func (s *GradeService) ImportScores(ctx context.Context, req ImportScoresRequest) ([]ScoreImportCell, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}
	dim := models.Dimension(req.Dimension)
	if !dim.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown dimension %q", req.Dimension))
	}
	course, students, err := s.loadCourse(ctx, req.TeacherID, req.CourseLabel)
	if err != nil {
		return nil, err
	}

	count := grading.Caps[dim].MaxCriteria
	criteria, err := s.grades.ListCriteria(ctx, course.ID, req.Trimester)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load criteria")
	}
	for _, c := range criteria {
		if c.Dimension == dim && len(c.Titles) > 0 {
			count = len(c.Titles)
		}
	}

	lines := strings.Split(strings.ReplaceAll(req.Column, "\r\n", "\n"), "\n")
	limit := float64(grading.Caps[dim].MaxPoints)

	var cells []ScoreImportCell
	for idx, st := range students {
		if st.Status != models.StudentStatusActive {
			continue
		}
		cell := ScoreImportCell{StudentID: st.ID, Values: make([]string, count)}
		if idx < len(lines) {
			cols := strings.Split(lines[idx], "\t")
			for i := 0; i < count && i < len(cols); i++ {
				val := strings.TrimSpace(cols[i])
				if val == "0" {
					val = ""
				}
				if v, ok := grading.ParseScore(val); ok && v > limit {
					val = strconv.FormatFloat(limit, 'f', -1, 64)
				}
				cell.Values[i] = val
			}
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// ReportCardRow carries the per-trimester dimension averages printed on one
// student's report card.
type ReportCardRow struct {
	Student models.StudentRef      `json:"student"`
	Notes   map[int]map[string]int `json:"notes"`
}

// ReportCards derives the dimension averages of every trimester per student,
// keyed by uppercased dimension name.
func (s *GradeService) ReportCards(ctx context.Context, teacherID, courseLabel string) ([]ReportCardRow, error) {
	course, students, err := s.loadCourse(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, err
	}
	rows, err := s.grades.ListGradesByCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	type dimKey struct {
		trimester int
		dim       models.Dimension
	}
	byStudent := make(map[string]map[dimKey][]float64)
	for _, row := range rows {
		dims, ok := byStudent[row.StudentID]
		if !ok {
			dims = make(map[dimKey][]float64)
			byStudent[row.StudentID] = dims
		}
		dims[dimKey{row.Trimester, row.Dimension}] = row.Scores
	}

	result := make([]ReportCardRow, 0, len(students))
	for _, st := range students {
		row := ReportCardRow{
			Student: models.StudentRef{ID: st.ID, RegisterNumber: st.RegisterNumber, FullName: st.FullName, Status: st.Status},
			Notes:   make(map[int]map[string]int, 3),
		}
		for t := 1; t <= 3; t++ {
			notes := make(map[string]int, len(models.Dimensions))
			for _, dim := range models.Dimensions {
				notes[strings.ToUpper(string(dim))] = grading.DimensionAverage(byStudent[st.ID][dimKey{t, dim}])
			}
			row.Notes[t] = notes
		}
		result = append(result, row)
	}
	return result, nil
}

// Centralizer builds the annual overview of a course: the three trimester
// totals and their average per student, cached until the next grade save.
func (s *GradeService) Centralizer(ctx context.Context, teacherID, courseLabel string) ([]models.CentralizerRow, error) {
	course, students, err := s.loadCourse(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, err
	}

	key := centralizerKey(course.ID)
	if s.cache != nil {
		var cached []models.CentralizerRow
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.grades.ListGradesByCourse(ctx, course.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load grades")
	}

	type dimKey struct {
		trimester int
		dim       models.Dimension
	}
	byStudent := make(map[string]map[dimKey][]float64)
	for _, row := range rows {
		dims, ok := byStudent[row.StudentID]
		if !ok {
			dims = make(map[dimKey][]float64)
			byStudent[row.StudentID] = dims
		}
		dims[dimKey{row.Trimester, row.Dimension}] = row.Scores
	}

	result := make([]models.CentralizerRow, 0, len(students))
	for _, st := range students {
		row := models.CentralizerRow{
			StudentID:      st.ID,
			RegisterNumber: st.RegisterNumber,
			FullName:       st.FullName,
			Status:         st.Status,
		}
		totals := [4]int{}
		for t := 1; t <= 3; t++ {
			total := 0
			for _, dim := range models.Dimensions {
				total += grading.DimensionAverage(byStudent[st.ID][dimKey{t, dim}])
			}
			totals[t] = total
		}
		row.Trimester1, row.Trimester2, row.Trimester3 = totals[1], totals[2], totals[3]
		row.Annual = grading.AnnualAverage(totals[1], totals[2], totals[3])
		result = append(result, row)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache centralizer", zap.Error(err))
		}
	}
	return result, nil
}

func (s *GradeService) buildCriteria(courseID string, req SaveGradesRequest) ([]models.GradingCriteria, error) {
	var criteria []models.GradingCriteria
	for rawDim, titles := range req.Criteria {
		dim := models.Dimension(rawDim)
		if !dim.Valid() {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown dimension %q", rawDim))
		}
		if max := grading.Caps[dim].MaxCriteria; len(titles) > max {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("dimension %s allows at most %d criteria", dim, max))
		}
		upper := make(pq.StringArray, len(titles))
		for i, title := range titles {
			upper[i] = strings.ToUpper(strings.TrimSpace(title))
		}
		criteria = append(criteria, models.GradingCriteria{
			CourseID:  courseID,
			Trimester: req.Trimester,
			Dimension: dim,
			Titles:    upper,
		})
	}
	return criteria, nil
}

func (s *GradeService) buildGrades(students []models.Student, req SaveGradesRequest) ([]models.StudentGrade, error) {
	active := make(map[string]bool, len(students))
	for _, st := range students {
		if st.Status == models.StudentStatusActive {
			active[st.ID] = true
		}
	}

	var grades []models.StudentGrade
	for studentID, dims := range req.Scores {
		if !active[studentID] {
			continue
		}
		for rawDim, entries := range dims {
			dim := models.Dimension(rawDim)
			if !dim.Valid() {
				return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown dimension %q", rawDim))
			}
			limit := float64(grading.Caps[dim].MaxPoints)
			scores := make(pq.Float64Array, len(entries))
			for i, entry := range entries {
				v, ok := grading.ParseScore(entry)
				if !ok {
					v = 0
				}
				if v > limit {
					return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("score %g exceeds the %s cap of %g", v, dim, limit))
				}
				scores[i] = v
			}
			grades = append(grades, models.StudentGrade{
				StudentID: studentID,
				Trimester: req.Trimester,
				Dimension: dim,
				Scores:    scores,
			})
		}
	}
	return grades, nil
}

func (s *GradeService) loadCourse(ctx context.Context, teacherID, label string) (*models.Course, []models.Student, error) {
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

func centralizerKey(courseID string) string {
	return "centralizer:" + courseID
}
