package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// GradeHandler exposes grading endpoints.
type GradeHandler struct {
	grades *service.GradeService
}

// NewGradeHandler constructs GradeHandler.
func NewGradeHandler(grades *service.GradeService) *GradeHandler {
	return &GradeHandler{grades: grades}
}

// Get godoc
// @Summary Get the grade sheet of a course trimester
// @Tags Grades
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param trimester query int true "Trimester 1-3"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/grades [get]
func (h *GradeHandler) Get(c *gin.Context) {
	trimester, _ := strconv.Atoi(c.Query("trimester"))
	sheet, err := h.grades.Get(c.Request.Context(), service.GetGradesRequest{
		TeacherID:   teacherID(c),
		CourseLabel: c.Param("label"),
		Trimester:   trimester,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sheet, nil)
}

// Save godoc
// @Summary Save criteria and scores for a course trimester
// @Tags Grades
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.SaveGradesRequest true "Grade sheet"
// @Success 204
// @Failure 412 {object} response.Envelope "Sheet was loaded for a different course or trimester"
// @Router /courses/{label}/grades [put]
func (h *GradeHandler) Save(c *gin.Context) {
	var req service.SaveGradesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	if err := h.grades.Save(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ImportScores godoc
// @Summary Sanitize a pasted score column for one dimension
// @Tags Grades
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.ImportScoresRequest true "Pasted column"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /courses/{label}/grades/import [post]
func (h *GradeHandler) ImportScores(c *gin.Context) {
	var req service.ImportScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	cells, err := h.grades.ImportScores(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cells, nil)
}

// ReportCards godoc
// @Summary Get per-trimester dimension averages for report cards
// @Tags Grades
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/report-cards [get]
func (h *GradeHandler) ReportCards(c *gin.Context) {
	rows, err := h.grades.ReportCards(c.Request.Context(), teacherID(c), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}

// Centralizer godoc
// @Summary Get the annual grade overview of a course
// @Tags Grades
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/centralizer [get]
func (h *GradeHandler) Centralizer(c *gin.Context) {
	rows, err := h.grades.Centralizer(c.Request.Context(), teacherID(c), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rows, nil)
}
