package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/registro-docente/api/internal/models"
	appErrors "github.com/registro-docente/api/pkg/errors"
)

// InstitutionRepo defines the persistence operations the institution service needs.
type InstitutionRepo interface {
	Get(ctx context.Context, teacherID string) (*models.InstitutionalData, error)
	Upsert(ctx context.Context, data *models.InstitutionalData) error
}

// SaveInstitutionRequest writes the report cover header block of a teacher.
type SaveInstitutionRequest struct {
	TeacherID            string `json:"teacher_id" validate:"required"`
	Department           string `json:"department"`
	District             string `json:"district"`
	Network              string `json:"network"`
	SIECode              string `json:"sie_code"`
	ManagementYear       string `json:"management_year"`
	SchoolUnit           string `json:"school_unit"`
	DistrictDirectorName string `json:"district_director_name"`
	DirectorName         string `json:"director_name"`
	Subject              string `json:"subject"`
}

// InstitutionService manages the per-teacher institutional header block.
type InstitutionService struct {
	repo     InstitutionRepo
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInstitutionService constructs an InstitutionService.
func NewInstitutionService(repo InstitutionRepo, validate *validator.Validate, logger *zap.Logger) *InstitutionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstitutionService{repo: repo, validate: validate, logger: logger}
}

// Get returns the teacher's institutional data. A teacher who never saved
// one gets an empty block rather than an error.
func (s *InstitutionService) Get(ctx context.Context, teacherID string) (*models.InstitutionalData, error) {
	data, err := s.repo.Get(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load institutional data")
	}
	if data == nil {
		data = &models.InstitutionalData{TeacherID: teacherID}
	}
	return data, nil
}

// Save writes the teacher's institutional data.
func (s *InstitutionService) Save(ctx context.Context, req SaveInstitutionRequest) (*models.InstitutionalData, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid institutional payload")
	}
	data := &models.InstitutionalData{
		TeacherID:            req.TeacherID,
		Department:           req.Department,
		District:             req.District,
		Network:              req.Network,
		SIECode:              req.SIECode,
		ManagementYear:       req.ManagementYear,
		SchoolUnit:           req.SchoolUnit,
		DistrictDirectorName: req.DistrictDirectorName,
		DirectorName:         req.DirectorName,
		Subject:              req.Subject,
	}
	if err := s.repo.Upsert(ctx, data); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save institutional data")
	}
	return data, nil
}
