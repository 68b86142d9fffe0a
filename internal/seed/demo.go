// Package seed loads a demo account so a fresh install has something to show.
package seed

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/shreywv2007/StudyFlow/internal/models"
	"github.com/shreywv2007/StudyFlow/internal/stats"
	"github.com/shreywv2007/StudyFlow/internal/store"
)

const (
	DemoName  = "Alex Johnson"
	DemoEmail = "alex@example.com"
)

// Demo creates the demo user and its sample rows, with dates relative to today.
func Demo(ctx context.Context, st *store.Store, today time.Time, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user, err := st.CreateUser(ctx, DemoName, DemoEmail, string(hash))
	if err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}

	day := func(offset int) string { return stats.Day(today.AddDate(0, 0, offset)) }
	friday := int(time.Friday - today.Weekday())

	tasks := []struct {
		title, due, priority, kind string
	}{
		{"Calculus Midterm Prep", day(0), models.PriorityHigh, models.TaskTypeExam},
		{"History Essay Draft", day(1), models.PriorityHigh, models.TaskTypeAssignment},
		{"Physics Lab Report", day(friday), models.PriorityMedium, models.TaskTypeAssignment},
		{"Read Chapter 5 - Biology", day(7), models.PriorityLow, models.TaskTypeReading},
	}
	for _, t := range tasks {
		if _, err := st.CreateTask(ctx, user.ID, t.title, t.due, t.priority, t.kind); err != nil {
			return nil, fmt.Errorf("seed task %q: %w", t.title, err)
		}
	}

	courses := []struct {
		name, code string
		credits    int
		grade      string
	}{
		{"Calculus II", "MATH 201", 4, "A"},
		{"Art History", "ART 105", 3, "B+"},
		{"Comp Sci", "CS 150", 3, "A"},
		{"Physics I", "PHYS 101", 4, "B"},
	}
	for _, c := range courses {
		grade := c.grade
		if _, err := st.CreateCourse(ctx, user.ID, c.name, c.code, c.credits, &grade); err != nil {
			return nil, fmt.Errorf("seed course %q: %w", c.name, err)
		}
	}

	sessions := []struct {
		subject  string
		duration int
		date     string
		notes    string
	}{
		{"Mathematics", 90, day(0), "Worked on integration techniques"},
		{"Physics", 60, day(-1), "Lab report writing"},
		{"Art History", 45, day(-1), "Renaissance period notes"},
		{"Computer Science", 120, day(-2), "Algorithm practice"},
	}
	for _, s := range sessions {
		if _, err := st.CreateStudySession(ctx, user.ID, s.subject, s.duration, s.date, s.notes); err != nil {
			return nil, fmt.Errorf("seed session %q: %w", s.subject, err)
		}
	}

	notes := []struct {
		subject, title, content, tags string
	}{
		{"Mathematics", "Integration Techniques",
			"Key methods:\n1. U-Substitution\n2. Integration by parts\n3. Partial fractions\n4. Trigonometric substitution",
			"calculus,integration,formulas"},
		{"Physics", "Newton's Laws Summary",
			"1st Law: Inertia - objects resist changes\n2nd Law: F = ma\n3rd Law: Action-reaction pairs",
			"physics,mechanics,laws"},
		{"Art History", "Renaissance Key Artists",
			"Leonardo da Vinci - Mona Lisa, Last Supper\nMichelangelo - David, Sistine Chapel\nRaphael - School of Athens",
			"art,renaissance,artists"},
	}
	for _, n := range notes {
		if _, err := st.CreateNote(ctx, user.ID, n.subject, n.title, n.content, n.tags); err != nil {
			return nil, fmt.Errorf("seed note %q: %w", n.title, err)
		}
	}

	checkins := []models.WellbeingEntry{
		{Date: day(0), Mood: models.MoodGreat, SleepHours: 8, StressLevel: 3, Notes: "Feeling energized and productive!"},
		{Date: day(-1), Mood: models.MoodGood, SleepHours: 7, StressLevel: 4, Notes: "Good day, slight stress about upcoming exam"},
		{Date: day(-2), Mood: models.MoodOkay, SleepHours: 6, StressLevel: 6, Notes: "Stayed up late studying"},
	}
	for _, e := range checkins {
		e.UserID = user.ID
		if _, err := st.CreateWellbeing(ctx, e); err != nil {
			return nil, fmt.Errorf("seed wellbeing %s: %w", e.Date, err)
		}
	}

	if _, err := st.UpsertSettings(ctx, user.ID, models.UpdateSettingsRequest{}); err != nil {
		return nil, fmt.Errorf("seed settings: %w", err)
	}
	return user, nil
}
