package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registro-docente/api/internal/service"
	appErrors "github.com/registro-docente/api/pkg/errors"
	"github.com/registro-docente/api/pkg/response"
)

// InstitutionHandler exposes the report cover header endpoints.
type InstitutionHandler struct {
	institution *service.InstitutionService
}

// NewInstitutionHandler constructs InstitutionHandler.
func NewInstitutionHandler(institution *service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institution: institution}
}

// Get godoc
// @Summary Get the teacher's institutional data
// @Tags Institution
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /institution [get]
func (h *InstitutionHandler) Get(c *gin.Context) {
	data, err := h.institution.Get(c.Request.Context(), teacherID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}

// Save godoc
// @Summary Save the teacher's institutional data
// @Tags Institution
// @Accept json
// @Produce json
// @Param X-Teacher-ID header string true "Teacher ID"
// @Param payload body service.SaveInstitutionRequest true "Institutional data"
// @Success 200 {object} response.Envelope
// @Router /institution [put]
func (h *InstitutionHandler) Save(c *gin.Context) {
	var req service.SaveInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	req.TeacherID = teacherID(c)
	data, err := h.institution.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, data, nil)
}
