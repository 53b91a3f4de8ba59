package models

import "time"

// InstitutionalData is the per-teacher header block printed on report covers:
// school identification and the names of the signing authorities.
type InstitutionalData struct {
	TeacherID            string    `db:"teacher_id" json:"teacher_id"`
	Department           string    `db:"department" json:"department"`
	District             string    `db:"district" json:"district"`
	Network              string    `db:"network" json:"network"`
	SIECode              string    `db:"sie_code" json:"sie_code"`
	ManagementYear       string    `db:"management_year" json:"management_year"`
	SchoolUnit           string    `db:"school_unit" json:"school_unit"`
	DistrictDirectorName string    `db:"district_director_name" json:"district_director_name"`
	DirectorName         string    `db:"director_name" json:"director_name"`
	Subject              string    `db:"subject" json:"subject"`
	UpdatedAt            time.Time `db:"updated_at" json:"updated_at"`
}
