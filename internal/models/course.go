package models

import "time"

// Course represents a class group taught by a teacher, labelled "grade parallel" (e.g. "1RO A").
type Course struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacher_id"`
	Grade     string    `db:"grade" json:"grade"`
	Parallel  string    `db:"parallel" json:"parallel"`
	Label     string    `db:"label" json:"label"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
