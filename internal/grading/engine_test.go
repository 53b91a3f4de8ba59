package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/registro-docente/api/internal/models"
)

func TestWeightedScore(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		dim  models.Dimension
		want int
	}{
		{name: "averages valid entries", raw: []string{"8", "9", "10"}, dim: models.DimensionSer, want: 9},
		{name: "rounds half up", raw: []string{"8", "9"}, dim: models.DimensionSer, want: 9},
		{name: "ignores blank entries", raw: []string{"40", "", ""}, dim: models.DimensionSaber, want: 40},
		{name: "ignores unparseable entries", raw: []string{"40", "abc", "38"}, dim: models.DimensionSaber, want: 39},
		{name: "clamps to dimension cap", raw: []string{"60", "50"}, dim: models.DimensionSaber, want: 45},
		{name: "no valid entries scores zero", raw: []string{"", "n/a"}, dim: models.DimensionHacer, want: 0},
		{name: "empty input scores zero", raw: nil, dim: models.DimensionAuto, want: 0},
		{name: "negative average floors at zero", raw: []string{"-4", "-2"}, dim: models.DimensionSer, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeightedScore(tt.raw, tt.dim))
		})
	}
}

func TestFinalGrade(t *testing.T) {
	grade := FinalGrade(map[models.Dimension]int{
		models.DimensionSer:   9,
		models.DimensionSaber: 43,
		models.DimensionHacer: 36,
		models.DimensionAuto:  5,
	})
	assert.Equal(t, 93, grade)
	assert.True(t, IsPassing(grade))

	assert.Equal(t, 0, FinalGrade(nil))
	assert.False(t, IsPassing(50))
	assert.True(t, IsPassing(51))
}

func TestFinalGradeUpperBound(t *testing.T) {
	full := map[models.Dimension]int{}
	for dim, c := range Caps {
		full[dim] = c.MaxPoints
	}
	assert.Equal(t, 100, FinalGrade(full))
}

func TestDimensionAverage(t *testing.T) {
	assert.Equal(t, 0, DimensionAverage(nil))
	assert.Equal(t, 9, DimensionAverage([]float64{8, 9, 10}))
	assert.Equal(t, 9, DimensionAverage([]float64{8.4, 9.6}))
}

func TestAnnualAverage(t *testing.T) {
	tests := []struct {
		name       string
		t1, t2, t3 int
		want       int
	}{
		{name: "full year", t1: 60, t2: 70, t3: 80, want: 70},
		{name: "divisor stays three with one trimester graded", t1: 80, t2: 0, t3: 0, want: 27},
		{name: "no grades yet", t1: 0, t2: 0, t3: 0, want: 0},
		{name: "rounds result", t1: 51, t2: 51, t3: 52, want: 51},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnnualAverage(tt.t1, tt.t2, tt.t3))
		})
	}
}

func TestProgressPct(t *testing.T) {
	assert.Equal(t, 0, ProgressPct(0, 5))
	assert.Equal(t, 50, ProgressPct(10, 5))
	assert.Equal(t, 120, ProgressPct(10, 12), "developed beyond planned is reported as-is")
	assert.Equal(t, 33, ProgressPct(3, 1))
}

func TestTally(t *testing.T) {
	days := []int{2, 3, 4, 5}
	marks := map[int]models.AttendanceStatus{
		2: models.AttendanceAbsent,
		3: models.AttendanceLate,
		4: models.AttendanceExcused,
	}
	present, absent := Tally(days, marks)
	assert.Equal(t, 1, present, "unmarked day counts as present")
	assert.Equal(t, 1, absent)

	present, absent = Tally(days, nil)
	assert.Equal(t, 4, present)
	assert.Equal(t, 0, absent)

	present, absent = Tally(nil, marks)
	assert.Equal(t, 0, present)
	assert.Equal(t, 0, absent)
}

func TestParseScore(t *testing.T) {
	v, ok := ParseScore(" 8.5 ")
	assert.True(t, ok)
	assert.Equal(t, 8.5, v)

	_, ok = ParseScore("")
	assert.False(t, ok)

	_, ok = ParseScore("ocho")
	assert.False(t, ok)
}
