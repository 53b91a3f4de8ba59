package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// RosterHandler exposes filiation endpoints.
type RosterHandler struct {
	roster *service.RosterService
}

// NewRosterHandler constructs RosterHandler.
func NewRosterHandler(roster *service.RosterService) *RosterHandler {
	return &RosterHandler{roster: roster}
}

// Get godoc
// @Summary Get the roster of a course
// @Tags Roster
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/roster [get]
func (h *RosterHandler) Get(c *gin.Context) {
	students, err := h.roster.Get(c.Request.Context(), teacherID(c), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Save godoc
// @Summary Replace the roster of a course
// @Tags Roster
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.SaveRosterRequest true "Roster rows"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/roster [put]
func (h *RosterHandler) Save(c *gin.Context) {
	var req service.SaveRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	students, err := h.roster.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Import godoc
// @Summary Import tab-separated roster rows
// @Tags Roster
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.ImportRosterRequest true "Pasted rows"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/roster/import [post]
func (h *RosterHandler) Import(c *gin.Context) {
	var req service.ImportRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	students, err := h.roster.Import(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Delete godoc
// @Summary Delete a student from a roster
// @Tags Roster
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param studentId path string true "Student ID"
// @Success 204
// @Router /courses/{label}/roster/{studentId} [delete]
func (h *RosterHandler) Delete(c *gin.Context) {
	req := service.DeleteStudentRequest{
		TeacherID:   teacherID(c),
		CourseLabel: c.Param("label"),
		StudentID:   c.Param("studentId"),
	}
	if err := h.roster.Delete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
