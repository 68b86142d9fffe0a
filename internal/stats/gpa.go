package stats

import (
	"math"
	"strconv"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "F": 0.0,
}

// GradePoints looks up a letter grade. Matching is exact.
func GradePoints(grade string) (float64, bool) {
	p, ok := gradePoints[grade]
	return p, ok
}

// GPA is the credit-weighted grade point average rounded to two decimals.
// Courses with a missing or unknown grade add no points but their credits
// still count in the denominator. No credits at all gives 0.
func GPA(courses []models.Course) float64 {
	var points float64
	var credits int
	for _, c := range courses {
		credits += c.Credits
		if c.Grade == nil {
			continue
		}
		p, _ := GradePoints(*c.Grade)
		points += p * float64(c.Credits)
	}
	if credits == 0 {
		return 0
	}
	return math.Round(points/float64(credits)*100) / 100
}

// FormatGPA renders a GPA with two decimals, e.g. "3.70".
func FormatGPA(gpa float64) string {
	return strconv.FormatFloat(gpa, 'f', 2, 64)
}
