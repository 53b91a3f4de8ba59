// Package grading holds the pure arithmetic behind trimester evaluation:
// dimension caps, weighted scores, annual averages, attendance tallies and
// curriculum progress percentages. It has no persistence and no I/O.
package grading

import (
	"math"
	"strconv"
	"strings"

	"github.com/registro-docente/api/internal/models"
)

// PassingGrade is the minimum final grade considered approved.
const PassingGrade = 51

// DimensionCap bounds one evaluation area: how many criterion columns it may
// hold and how many points its weighted score contributes to the final grade.
type DimensionCap struct {
	MaxCriteria int
	MaxPoints   int
}

// Caps maps each dimension to its configured bounds. The four MaxPoints sum
// to 100, so a final grade always lands in [0, 100].
var Caps = map[models.Dimension]DimensionCap{
	models.DimensionSer:   {MaxCriteria: 3, MaxPoints: 10},
	models.DimensionSaber: {MaxCriteria: 8, MaxPoints: 45},
	models.DimensionHacer: {MaxCriteria: 8, MaxPoints: 40},
	models.DimensionAuto:  {MaxCriteria: 1, MaxPoints: 5},
}

// ParseScore converts one raw criterion entry to a score. Blank or
// unparseable entries are reported as invalid and take no part in averages.
func ParseScore(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// WeightedScore averages the valid entries of one dimension and clamps the
// rounded result to the dimension's point cap. A dimension with no valid
// entries scores zero rather than failing.
func WeightedScore(raw []string, dim models.Dimension) int {
	limit := Caps[dim].MaxPoints
	sum := 0.0
	valid := 0
	for _, entry := range raw {
		if v, ok := ParseScore(entry); ok {
			sum += v
			valid++
		}
	}
	if valid == 0 {
		return 0
	}
	avg := int(math.Round(sum / float64(valid)))
	if avg > limit {
		return limit
	}
	if avg < 0 {
		return 0
	}
	return avg
}

// FinalGrade sums the four weighted dimension scores of a trimester.
func FinalGrade(byDimension map[models.Dimension]int) int {
	total := 0
	for _, dim := range models.Dimensions {
		total += byDimension[dim]
	}
	return total
}

// WeightedStored averages persisted scores for one dimension and clamps the
// rounded result to the point cap, mirroring WeightedScore for rows that were
// already sanitised on write.
func WeightedStored(scores []float64, dim models.Dimension) int {
	if len(scores) == 0 {
		return 0
	}
	limit := Caps[dim].MaxPoints
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	avg := int(math.Round(sum / float64(len(scores))))
	if avg > limit {
		return limit
	}
	if avg < 0 {
		return 0
	}
	return avg
}

// DimensionAverage averages already-persisted scores for the annual overview.
// Stored rows were sanitised on write, so every entry counts.
func DimensionAverage(scores []float64) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	return int(math.Round(sum / float64(len(scores))))
}

// AnnualAverage averages the three trimester totals. The divisor stays three
// even when a trimester has no grades yet, matching how report cards are
// filled in over the school year. All-zero input yields zero.
func AnnualAverage(t1, t2, t3 int) int {
	if t1 == 0 && t2 == 0 && t3 == 0 {
		return 0
	}
	return int(math.Round(float64(t1+t2+t3) / 3.0))
}

// IsPassing reports whether a final grade meets the approval threshold.
func IsPassing(grade int) bool {
	return grade >= PassingGrade
}

// ProgressPct computes the developed-over-planned percentage for curriculum
// tracking. Developed may legitimately exceed planned, so the result is not
// clamped to 100.
func ProgressPct(planned, developed int) int {
	if planned <= 0 {
		return 0
	}
	return int(math.Round(float64(developed) / float64(planned) * 100))
}

// Tally counts present and absent marks over the enabled days of a scope.
// A day with no persisted mark counts as present; late and excused marks
// count as neither.
func Tally(days []int, marks map[int]models.AttendanceStatus) (present, absent int) {
	for _, day := range days {
		status, ok := marks[day]
		if !ok {
			status = models.AttendancePresent
		}
		switch status {
		case models.AttendancePresent:
			present++
		case models.AttendanceAbsent:
			absent++
		}
	}
	return present, absent
}
