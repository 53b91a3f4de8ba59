package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/registro-docente/api/internal/models"
)

// InstitutionRepository manages the per-teacher institutional header block.
type InstitutionRepository struct {
	db *sqlx.DB
}

// NewInstitutionRepository constructs an InstitutionRepository.
func NewInstitutionRepository(db *sqlx.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// Get fetches the teacher's institutional data, or nil when never saved.
func (r *InstitutionRepository) Get(ctx context.Context, teacherID string) (*models.InstitutionalData, error) {
	const query = `SELECT teacher_id, department, district, network, sie_code, management_year,
        school_unit, district_director_name, director_name, subject, updated_at
        FROM institutional_data WHERE teacher_id = $1`
	var data models.InstitutionalData
	if err := r.db.GetContext(ctx, &data, query, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get institutional data: %w", err)
	}
	return &data, nil
}

// Upsert writes the teacher's institutional data, one row per teacher.
func (r *InstitutionRepository) Upsert(ctx context.Context, data *models.InstitutionalData) error {
	data.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO institutional_data (teacher_id, department, district, network, sie_code,
        management_year, school_unit, district_director_name, director_name, subject, updated_at)
        VALUES (:teacher_id, :department, :district, :network, :sie_code,
        :management_year, :school_unit, :district_director_name, :director_name, :subject, :updated_at)
        ON CONFLICT (teacher_id) DO UPDATE SET
        department = EXCLUDED.department, district = EXCLUDED.district, network = EXCLUDED.network,
        sie_code = EXCLUDED.sie_code, management_year = EXCLUDED.management_year,
        school_unit = EXCLUDED.school_unit, district_director_name = EXCLUDED.district_director_name,
        director_name = EXCLUDED.director_name, subject = EXCLUDED.subject, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, data); err != nil {
		return fmt.Errorf("upsert institutional data: %w", err)
	}
	return nil
}
