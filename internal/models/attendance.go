package models

import "time"

// AttendanceStatus is the per-cell mark for a student on a working day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "P"
	AttendanceAbsent  AttendanceStatus = "F"
	AttendanceLate    AttendanceStatus = "R"
	AttendanceExcused AttendanceStatus = "L"
)

// Valid reports whether the status is one of the four known marks.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}

// AttendanceMark is one persisted attendance row, keyed by (student, date).
type AttendanceMark struct {
	ID        string           `db:"id" json:"id"`
	StudentID string           `db:"student_id" json:"student_id"`
	Date      time.Time        `db:"date" json:"date"`
	Status    AttendanceStatus `db:"status" json:"status"`
}

// WorkingDay is a weekday of the month eligible for attendance tracking.
// Enabled is derived from the presence of persisted rows and stays togglable;
// toggles are staged client-side and only take effect on save.
type WorkingDay struct {
	Day     int    `json:"day"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// AttendanceTally summarises the two headline counters for a student.
// Late and excused marks are tracked per cell but contribute to neither.
type AttendanceTally struct {
	StudentID string `json:"student_id"`
	Present   int    `json:"present"`
	Absent    int    `json:"absent"`
}
