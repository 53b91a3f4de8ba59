package models

import "time"

// StudentStatus distinguishes active students from withdrawn ones, which are
// kept for historical display but excluded from new writes.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "ACTIVE"
	StudentStatusWithdrawn StudentStatus = "WITHDRAWN"
)

// Student is one roster row. RegisterNumber is the dense 1-based position in
// the course roster recomputed on every save; ID is the stable identifier
// once assigned by the store (empty means never persisted).
type Student struct {
	ID                string        `db:"id" json:"id"`
	CourseID          string        `db:"course_id" json:"course_id"`
	RegisterNumber    int           `db:"register_number" json:"register_number"`
	FullName          string        `db:"full_name" json:"full_name"`
	Gender            string        `db:"gender" json:"gender"`
	NationalID        string        `db:"ci" json:"ci"`
	RUDE              string        `db:"rude" json:"rude"`
	BirthDate         *time.Time    `db:"birth_date" json:"birth_date,omitempty"`
	Age               *int          `db:"age" json:"age,omitempty"`
	TutorName         string        `db:"tutor_name" json:"tutor_name"`
	TutorRelationship string        `db:"tutor_relationship" json:"tutor_relationship"`
	TutorPhone        string        `db:"tutor_phone" json:"tutor_phone"`
	Status            StudentStatus `db:"status" json:"status"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

// StudentRef is the slim projection used by attendance and grade screens.
type StudentRef struct {
	ID             string        `db:"id" json:"id"`
	RegisterNumber int           `db:"register_number" json:"register_number"`
	FullName       string        `db:"full_name" json:"full_name"`
	Status         StudentStatus `db:"status" json:"status"`
}
