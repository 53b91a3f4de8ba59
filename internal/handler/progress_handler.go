package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// ProgressHandler exposes curricular progress endpoints.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler constructs ProgressHandler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// Overview godoc
// @Summary Get per-course and global curricular progress
// @Tags Progress
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /progress [get]
func (h *ProgressHandler) Overview(c *gin.Context) {
	overview, err := h.progress.Overview(c.Request.Context(), teacherID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, overview, nil)
}

// Save godoc
// @Summary Save one trimester's topic counters for a course
// @Tags Progress
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param label path string true "Course label"
// @Param payload body service.SaveProgressRequest true "Topic counters"
// @Success 204
// @Router /courses/{label}/progress [put]
func (h *ProgressHandler) Save(c *gin.Context) {
	var req service.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	req.CourseLabel = c.Param("label")
	if err := h.progress.Save(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
