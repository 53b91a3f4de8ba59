package models

import "time"

// ScheduleEntry is one block of the teacher's weekly timetable. DayOfWeek
// runs Monday=1 through Friday=5. Overlapping blocks on the same day are
// allowed; teachers use them for split groups.
type ScheduleEntry struct {
	ID          string    `db:"id" json:"id"`
	TeacherID   string    `db:"teacher_id" json:"teacher_id"`
	DayOfWeek   int       `db:"day_of_week" json:"day_of_week"`
	StartTime   string    `db:"start_time" json:"start_time"`
	EndTime     string    `db:"end_time" json:"end_time"`
	CourseLabel string    `db:"course_label" json:"course_label"`
	Subject     string    `db:"subject" json:"subject"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
