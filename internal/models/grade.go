package models

import "github.com/lib/pq"

// Dimension is one of the four evaluation areas a trimester grade is built from.
type Dimension string

const (
	DimensionSer   Dimension = "ser"
	DimensionSaber Dimension = "saber"
	DimensionHacer Dimension = "hacer"
	DimensionAuto  Dimension = "auto"
)

// Dimensions lists the evaluation areas in display order.
var Dimensions = []Dimension{DimensionSer, DimensionSaber, DimensionHacer, DimensionAuto}

// Valid reports whether the dimension is one of the four known areas.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionSer, DimensionSaber, DimensionHacer, DimensionAuto:
		return true
	}
	return false
}

// GradingCriteria holds the criterion column titles a teacher configured for
// one dimension of a course trimester. Keyed by (course, trimester, dimension).
type GradingCriteria struct {
	ID        string         `db:"id" json:"id"`
	CourseID  string         `db:"course_id" json:"course_id"`
	Trimester int            `db:"trimester" json:"trimester"`
	Dimension Dimension      `db:"dimension" json:"dimension"`
	Titles    pq.StringArray `db:"titles" json:"titles"`
}

// StudentGrade holds the raw criterion scores of one student for one
// dimension of a trimester. Keyed by (student, trimester, dimension).
type StudentGrade struct {
	ID        string          `db:"id" json:"id"`
	StudentID string          `db:"student_id" json:"student_id"`
	Trimester int             `db:"trimester" json:"trimester"`
	Dimension Dimension       `db:"dimension" json:"dimension"`
	Scores    pq.Float64Array `db:"scores" json:"scores"`
}

// CentralizerRow is one line of the annual grade overview: the three
// trimester totals and their annual average for a student.
type CentralizerRow struct {
	StudentID      string        `json:"student_id"`
	RegisterNumber int           `json:"register_number"`
	FullName       string        `json:"full_name"`
	Status         StudentStatus `json:"status"`
	Trimester1     int           `json:"trimester_1"`
	Trimester2     int           `json:"trimester_2"`
	Trimester3     int           `json:"trimester_3"`
	Annual         int           `json:"annual"`
}
