package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/grading"
	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/export"
)

// CentralizerProvider supplies the annual overview a report is built from.
type CentralizerProvider interface {
	Centralizer(ctx context.Context, teacherID, courseLabel string) ([]models.CentralizerRow, error)
}

// AttendanceSheetProvider supplies monthly attendance data for exports.
type AttendanceSheetProvider interface {
	GetMonth(ctx context.Context, req GetAttendanceRequest) (*AttendanceMonth, error)
	Tallies(ctx context.Context, req GetAttendanceRequest) ([]models.AttendanceTally, error)
}

// InstitutionProvider supplies the header block printed on report covers.
type InstitutionProvider interface {
	Get(ctx context.Context, teacherID string) (*models.InstitutionalData, error)
}

// ReportService renders printable exports of the registry screens.
type ReportService struct {
	grades      CentralizerProvider
	attendance  AttendanceSheetProvider
	institution InstitutionProvider
	csv         *export.CSVExporter
	pdf         *export.PDFExporter
	logger      *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(grades CentralizerProvider, attendance AttendanceSheetProvider, institution InstitutionProvider, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		grades:      grades,
		attendance:  attendance,
		institution: institution,
		csv:         export.NewCSVExporter(),
		pdf:         export.NewPDFExporter(),
		logger:      logger,
	}
}

// CentralizerPDF renders the annual overview of a course as a PDF, titled
// with the teacher's school unit when one is on file.
func (s *ReportService) CentralizerPDF(ctx context.Context, teacherID, courseLabel string) ([]byte, error) {
	data, title, err := s.centralizerDataset(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, err
	}
	payload, err := s.pdf.Render(*data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render centralizer pdf")
	}
	return payload, nil
}

// CentralizerCSV renders the annual overview of a course as CSV.
func (s *ReportService) CentralizerCSV(ctx context.Context, teacherID, courseLabel string) ([]byte, error) {
	data, _, err := s.centralizerDataset(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, err
	}
	payload, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render centralizer csv")
	}
	return payload, nil
}

// AttendanceCSV renders one month's attendance sheet as CSV: one column per
// enabled day plus the present and absent tallies.
func (s *ReportService) AttendanceCSV(ctx context.Context, req GetAttendanceRequest) ([]byte, error) {
	sheet, err := s.attendance.GetMonth(ctx, req)
	if err != nil {
		return nil, err
	}
	tallies, err := s.attendance.Tallies(ctx, req)
	if err != nil {
		return nil, err
	}
	tallyByStudent := make(map[string]models.AttendanceTally, len(tallies))
	for _, t := range tallies {
		tallyByStudent[t.StudentID] = t
	}

	headers := []string{"N°", "ESTUDIANTE"}
	var enabled []models.WorkingDay
	for _, day := range sheet.Days {
		if day.Enabled {
			enabled = append(enabled, day)
			headers = append(headers, fmt.Sprintf("%s %d", day.Label, day.Day))
		}
	}
	headers = append(headers, "PRESENTES", "FALTAS")

	data := export.Dataset{Headers: headers}
	for _, st := range sheet.Students {
		row := map[string]string{
			"N°":         strconv.Itoa(st.RegisterNumber),
			"ESTUDIANTE": st.FullName,
		}
		for _, day := range enabled {
			status := models.AttendancePresent
			if byDay, ok := sheet.Marks[st.ID]; ok {
				if v, ok := byDay[day.Day]; ok {
					status = v
				}
			}
			row[fmt.Sprintf("%s %d", day.Label, day.Day)] = string(status)
		}
		tally := tallyByStudent[st.ID]
		row["PRESENTES"] = strconv.Itoa(tally.Present)
		row["FALTAS"] = strconv.Itoa(tally.Absent)
		data.Rows = append(data.Rows, row)
	}

	payload, err := s.csv.Render(data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render attendance csv")
	}
	return payload, nil
}

func (s *ReportService) centralizerDataset(ctx context.Context, teacherID, courseLabel string) (*export.Dataset, string, error) {
	rows, err := s.grades.Centralizer(ctx, teacherID, courseLabel)
	if err != nil {
		return nil, "", err
	}

	title := "CENTRALIZADOR ANUAL " + courseLabel
	if s.institution != nil {
		if info, err := s.institution.Get(ctx, teacherID); err == nil && info.SchoolUnit != "" {
			title = fmt.Sprintf("%s - CENTRALIZADOR ANUAL %s", info.SchoolUnit, courseLabel)
		}
	}

	data := &export.Dataset{
		Headers: []string{"N°", "ESTUDIANTE", "1ER TRIM", "2DO TRIM", "3ER TRIM", "PROMEDIO ANUAL", "SITUACION"},
	}
	for _, row := range rows {
		situation := "REPROBADO"
		if grading.IsPassing(row.Annual) {
			situation = "APROBADO"
		}
		if row.Status == models.StudentStatusWithdrawn {
			situation = "RETIRADO"
		}
		data.Rows = append(data.Rows, map[string]string{
			"N°":             strconv.Itoa(row.RegisterNumber),
			"ESTUDIANTE":     row.FullName,
			"1ER TRIM":       strconv.Itoa(row.Trimester1),
			"2DO TRIM":       strconv.Itoa(row.Trimester2),
			"3ER TRIM":       strconv.Itoa(row.Trimester3),
			"PROMEDIO ANUAL": strconv.Itoa(row.Annual),
			"SITUACION":      situation,
		})
	}
	return data, title, nil
}
