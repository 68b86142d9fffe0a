package stats

import (
	"testing"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

func course(grade string, credits int) models.Course {
	return models.Course{Grade: &grade, Credits: credits}
}

func TestGPA(t *testing.T) {
	cases := []struct {
		name    string
		courses []models.Course
		want    string
	}{
		{"no courses", nil, "0.00"},
		{"zero credits", []models.Course{course("A", 0)}, "0.00"},
		{"unknown grade still counts credits", []models.Course{course("P", 4)}, "0.00"},
		{"missing grade still counts credits", []models.Course{{Credits: 4}, course("A", 4)}, "2.00"},
		{"weighted", []models.Course{course("A", 4), course("B+", 3), course("A-", 3)}, "3.70"},
		{"plus and plain A are equal", []models.Course{course("A+", 3), course("A", 3)}, "4.00"},
		{"grade matching is exact", []models.Course{course("a", 3), course("A", 3)}, "2.00"},
		{"rounds to two decimals", []models.Course{course("B+", 1), course("C", 2)}, "2.43"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatGPA(GPA(tc.courses)); got != tc.want {
				t.Fatalf("gpa: want=%s got=%s", tc.want, got)
			}
		})
	}
}

func TestGradePoints(t *testing.T) {
	if p, ok := GradePoints("B-"); !ok || p != 2.7 {
		t.Fatalf("B-: want=2.7,true got=%v,%v", p, ok)
	}
	if p, ok := GradePoints("F"); !ok || p != 0 {
		t.Fatalf("F: want=0,true got=%v,%v", p, ok)
	}
	if _, ok := GradePoints("E"); ok {
		t.Fatalf("E should not be a known grade")
	}
}
