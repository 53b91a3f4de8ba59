package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// AttendanceHandler exposes monthly attendance endpoints.
type AttendanceHandler struct {
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// GetMonth godoc
// @Summary Get the attendance sheet of a course month
// @Tags Attendance
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param year query int false "Year (defaults to current)"
// @Param month query int true "Month 1-12"
// @Param trimester query int false "Trimester 1-3, 0 for unscoped"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/attendance [get]
func (h *AttendanceHandler) GetMonth(c *gin.Context) {
	req := attendanceQuery(c)
	sheet, err := h.attendance.GetMonth(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Save godoc
// @Summary Save the staged attendance state of a course month
// @Tags Attendance
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.SaveAttendanceRequest true "Month state"
// @Success 204
// @Router /courses/{label}/attendance [put]
func (h *AttendanceHandler) Save(c *gin.Context) {
	var req service.SaveAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	if err := h.attendance.Save(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Tallies godoc
// @Summary Count present and absent marks per student for a course month
// @Tags Attendance
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param year query int false "Year (defaults to current)"
// @Param month query int true "Month 1-12"
// @Param trimester query int false "Trimester 1-3, 0 for unscoped"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/attendance/tallies [get]
func (h *AttendanceHandler) Tallies(c *gin.Context) {
	req := attendanceQuery(c)
	tallies, err := h.attendance.Tallies(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tallies, nil)
}

func attendanceQuery(c *gin.Context) service.GetAttendanceRequest {
	req := service.GetAttendanceRequest{
		TeacherID:   teacherID(c),
		CourseLabel: c.Param("label"),
		Year:        time.Now().Year(),
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil && year > 0 {
		req.Year = year
	}
	if month, err := strconv.Atoi(c.Query("month")); err == nil {
		req.Month = month
	}
	if trimester, err := strconv.Atoi(c.Query("trimester")); err == nil {
		req.Trimester = trimester
	}
	return req
}
