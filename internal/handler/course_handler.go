package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs CourseHandler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List the teacher's courses
// @Tags Courses
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context(), teacherID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// Create godoc
// @Summary Open a new course
// @Tags Courses
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param payload body service.CreateCourseRequest true "Course label"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Delete godoc
// @Summary Delete a course and its roster
// @Tags Courses
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /courses/{label} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courses.Delete(c.Request.Context(), teacherID(c), c.Param("label")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListStudents godoc
// @Summary List students of a course
// @Tags Courses
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Success 200 {object} response.Envelope
// @Router /courses/{label}/students [get]
func (h *CourseHandler) ListStudents(c *gin.Context) {
	students, err := h.courses.ListStudents(c.Request.Context(), teacherID(c), c.Param("label"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}
