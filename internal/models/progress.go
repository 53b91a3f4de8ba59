package models

// CurricularProgress tracks planned versus developed curriculum topics for
// one course trimester.
type CurricularProgress struct {
	ID        string `db:"id" json:"id"`
	CourseID  string `db:"course_id" json:"course_id"`
	Trimester int    `db:"trimester" json:"trimester"`
	Planned   int    `db:"planned" json:"planned"`
	Developed int    `db:"developed" json:"developed"`
}

// TrimesterProgress is the derived view of one trimester's topic counts.
type TrimesterProgress struct {
	Planned      int `json:"planned"`
	Developed    int `json:"developed"`
	PctDeveloped int `json:"pct_developed"`
}

// CourseProgress aggregates the three trimesters of one course.
type CourseProgress struct {
	CourseID    string            `json:"course_id"`
	CourseLabel string            `json:"course_label"`
	Trimester1  TrimesterProgress `json:"trimester_1"`
	Trimester2  TrimesterProgress `json:"trimester_2"`
	Trimester3  TrimesterProgress `json:"trimester_3"`
}

// GlobalProgress sums planned and developed topics across all of a teacher's
// courses before computing a single percentage.
type GlobalProgress struct {
	Planned      int `json:"planned"`
	Developed    int `json:"developed"`
	PctDeveloped int `json:"pct_developed"`
}
