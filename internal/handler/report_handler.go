package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	"github.com/registro-docente/api/pkg/response"
)

// ReportHandler exposes printable export endpoints.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// CentralizerPDF godoc
// @Summary Download the annual overview of a course as PDF
// @Tags Reports
// @Produce application/pdf
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {file} binary
// @Router /courses/{label}/reports/centralizer.pdf [get]
func (h *ReportHandler) CentralizerPDF(c *gin.Context) {
	label := c.Param("label")
	payload, err := h.reports.CentralizerPDF(c.Request.Context(), teacherID(c), label)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=centralizador_%s.pdf", label))
	c.Data(http.StatusOK, "application/pdf", payload)
}

// CentralizerCSV godoc
// @Summary Download the annual overview of a course as CSV
// @Tags Reports
// @Produce text/csv
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {file} binary
// @Router /courses/{label}/reports/centralizer.csv [get]
func (h *ReportHandler) CentralizerCSV(c *gin.Context) {
	label := c.Param("label")
	payload, err := h.reports.CentralizerCSV(c.Request.Context(), teacherID(c), label)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=centralizador_%s.csv", label))
	c.Data(http.StatusOK, "text/csv", payload)
}

// AttendanceCSV godoc
// @Summary Download one month's attendance sheet as CSV
// @Tags Reports
// @Produce text/csv
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param year query int false "Year (defaults to current)"
// @Param month query int true "Month 1-12"
// @Param trimester query int false "Trimester 1-3, 0 for unscoped"
// @Success 200 {file} binary
// @Router /courses/{label}/reports/attendance.csv [get]
func (h *ReportHandler) AttendanceCSV(c *gin.Context) {
	req := attendanceQuery(c)
	payload, err := h.reports.AttendanceCSV(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=asistencia_%s_%d.csv", req.CourseLabel, req.Month))
	c.Data(http.StatusOK, "text/csv", payload)
}
