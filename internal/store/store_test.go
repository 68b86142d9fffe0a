package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.db")
	s, err := Open(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, path
}

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), MemoryPath, nil)
	if err != nil {
		t.Fatalf("open memory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func mustUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), "Alex", email, "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestOpenCreatesSchema(t *testing.T) {
	s, path := openTemp(t)
	defer s.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backing file missing: %v", err)
	}

	rows, err := s.FetchAll(context.Background(),
		"SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	if err != nil {
		t.Fatalf("list tables: %v", err)
	}
	want := []string{"courses", "notes", "settings", "study_sessions", "tasks", "users", "wellbeing"}
	if len(rows) != len(want) {
		t.Fatalf("tables: want=%v got=%v", want, rows)
	}
	for i, name := range want {
		if got := rows[i].String("name"); got != name {
			t.Fatalf("table %d: want=%q got=%q", i, name, got)
		}
	}
}

func TestOpenCorruptFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.db")
	if err := os.WriteFile(path, bytes.Repeat([]byte("garbage!"), 512), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Open(context.Background(), path, nil)
	if err == nil {
		t.Fatalf("expected error opening corrupt file")
	}
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got=%T", err)
	}
	if se.Op != "load" {
		t.Fatalf("op: want=%q got=%q", "load", se.Op)
	}
}

func TestRoundTripAfterReload(t *testing.T) {
	ctx := context.Background()
	s, path := openTemp(t)

	u := mustUser(t, s, "alex@example.com")
	task, err := s.CreateTask(ctx, u.ID, "Calculus: midterm prep ✎", "2026-10-20", models.PriorityHigh, models.TaskTypeExam)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	note, err := s.CreateNote(ctx, u.ID, "Physics", "Newton's Laws", "1st Law: inertia\n2nd Law: F = ma\n\tünïcødé ✓", "physics,laws")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	grade := "B+"
	course, err := s.CreateCourse(ctx, u.ID, "Art History", "ART 105", 3, &grade)
	if err != nil {
		t.Fatalf("create course: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(ctx, path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	gotTask, err := reopened.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if *gotTask != *task {
		t.Fatalf("task: want=%+v got=%+v", *task, *gotTask)
	}
	gotNote, err := reopened.GetNote(ctx, note.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if *gotNote != *note {
		t.Fatalf("note: want=%+v got=%+v", *note, *gotNote)
	}
	gotCourse, err := reopened.GetCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if gotCourse.Grade == nil || *gotCourse.Grade != grade || gotCourse.Credits != 3 {
		t.Fatalf("course: want=%+v got=%+v", *course, *gotCourse)
	}
	gotUser, err := reopened.GetUserByEmail(ctx, "alex@example.com")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if *gotUser != *u {
		t.Fatalf("user: want=%+v got=%+v", *u, *gotUser)
	}
}

func TestPersistTruncatesWAL(t *testing.T) {
	s, path := openTemp(t)
	defer s.Close()

	mustUser(t, s, "alex@example.com")

	info, err := os.Stat(path + "-wal")
	if err == nil && info.Size() != 0 {
		t.Fatalf("wal size after persist: want=0 got=%d", info.Size())
	}
}

func TestExecDuplicateEmailIsConstraint(t *testing.T) {
	s := openMemory(t)
	mustUser(t, s, "alex@example.com")

	_, err := s.CreateUser(context.Background(), "Other", "alex@example.com", "hash")
	if err == nil {
		t.Fatalf("expected duplicate email to fail")
	}
	if !IsConstraint(err) {
		t.Fatalf("expected constraint error, got=%v", err)
	}
	var se *StoreError
	if !errors.As(err, &se) || se.Op != "exec" {
		t.Fatalf("expected exec StoreError, got=%v", err)
	}
}

func TestExecMalformedQuery(t *testing.T) {
	s := openMemory(t)

	_, err := s.Exec(context.Background(), "UPDATE nope SET x = ?", 1)
	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got=%T (%v)", err, err)
	}
	if IsConstraint(err) {
		t.Fatalf("malformed query is not a constraint violation")
	}
}

func TestFetchOneAbsent(t *testing.T) {
	s := openMemory(t)

	row, err := s.FetchOne(context.Background(), "SELECT * FROM users WHERE id = ?", "missing")
	if err != nil {
		t.Fatalf("fetch one: %v", err)
	}
	if row != nil {
		t.Fatalf("expected nil row, got=%v", row)
	}
	if _, err := s.GetUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got=%v", err)
	}
}

func TestFetchAllKeepsQueryOrder(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	for _, due := range []string{"2026-10-25", "2026-10-20", "2026-10-22"} {
		if _, err := s.CreateTask(ctx, u.ID, "t "+due, due, models.PriorityMedium, models.TaskTypeTask); err != nil {
			t.Fatalf("create task: %v", err)
		}
	}

	tasks, err := s.ListTasks(ctx, u.ID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	want := []string{"2026-10-20", "2026-10-22", "2026-10-25"}
	for i, w := range want {
		if tasks[i].DueDate != w {
			t.Fatalf("task %d: want=%q got=%q", i, w, tasks[i].DueDate)
		}
	}

	rows, err := s.FetchAll(ctx, "SELECT due_date FROM tasks WHERE user_id = ? ORDER BY due_date DESC", u.ID)
	if err != nil {
		t.Fatalf("fetch all: %v", err)
	}
	if rows[0].String("due_date") != "2026-10-25" {
		t.Fatalf("desc order: want first=%q got=%q", "2026-10-25", rows[0].String("due_date"))
	}
}

func TestUpdateTaskPartialAndIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	created, err := s.CreateTask(ctx, u.ID, "History Essay", "2026-10-21", models.PriorityHigh, models.TaskTypeAssignment)
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	req := models.UpdateTaskRequest{Completed: boolPtr(true)}
	first, err := s.UpdateTask(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !first.Completed {
		t.Fatalf("completed: want=true got=false")
	}
	if first.Title != created.Title || first.DueDate != created.DueDate || first.Priority != created.Priority || first.Type != created.Type {
		t.Fatalf("untouched fields changed: before=%+v after=%+v", *created, *first)
	}

	second, err := s.UpdateTask(ctx, created.ID, req)
	if err != nil {
		t.Fatalf("repeat update: %v", err)
	}
	if *second != *first {
		t.Fatalf("repeat update: want=%+v got=%+v", *first, *second)
	}

	same, err := s.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{})
	if err != nil {
		t.Fatalf("empty update: %v", err)
	}
	if *same != *first {
		t.Fatalf("empty update changed row: want=%+v got=%+v", *first, *same)
	}
}

func TestUpdateMissingRow(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	if _, err := s.UpdateTask(ctx, "missing", models.UpdateTaskRequest{Title: strPtr("x")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("task: expected ErrNotFound, got=%v", err)
	}
	if _, err := s.UpdateCourse(ctx, "missing", models.UpdateCourseRequest{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("course: expected ErrNotFound, got=%v", err)
	}
	if _, err := s.UpdateNote(ctx, "missing", models.UpdateNoteRequest{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("note: expected ErrNotFound, got=%v", err)
	}
}

func TestUpdateNoteRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	n, err := s.CreateNote(ctx, u.ID, "Math", "Integration", "u-sub", "calculus")
	if err != nil {
		t.Fatalf("create note: %v", err)
	}
	if _, err := s.Exec(ctx, "UPDATE notes SET updated_at = ? WHERE id = ?", "2000-01-01T00:00:00.000Z", n.ID); err != nil {
		t.Fatalf("backdate: %v", err)
	}

	updated, err := s.UpdateNote(ctx, n.ID, models.UpdateNoteRequest{Content: strPtr("parts")})
	if err != nil {
		t.Fatalf("update note: %v", err)
	}
	if updated.UpdatedAt <= "2000-01-01T00:00:00.000Z" {
		t.Fatalf("updated_at not refreshed: %q", updated.UpdatedAt)
	}
	if updated.Title != "Integration" || updated.Content != "parts" {
		t.Fatalf("unexpected note: %+v", *updated)
	}
}

func TestUpsertSettings(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	if _, err := s.GetSettings(ctx, u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no settings yet, got=%v", err)
	}

	first, err := s.UpsertSettings(ctx, u.ID, models.UpdateSettingsRequest{Theme: strPtr("dark")})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	want := models.Settings{UserID: u.ID, Theme: "dark", Notifications: true, StudyReminder: true, BreakReminder: true}
	if *first != want {
		t.Fatalf("first upsert: want=%+v got=%+v", want, *first)
	}

	second, err := s.UpsertSettings(ctx, u.ID, models.UpdateSettingsRequest{BreakReminder: boolPtr(false)})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	want.BreakReminder = false
	if *second != want {
		t.Fatalf("second upsert: want=%+v got=%+v", want, *second)
	}

	third, err := s.UpsertSettings(ctx, u.ID, models.UpdateSettingsRequest{})
	if err != nil {
		t.Fatalf("empty upsert: %v", err)
	}
	if *third != want {
		t.Fatalf("empty upsert: want=%+v got=%+v", want, *third)
	}
}

func TestListWellbeingCapped(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	for i := 0; i < WellbeingHistory+5; i++ {
		_, err := s.CreateWellbeing(ctx, models.WellbeingEntry{
			UserID: u.ID, Date: "2026-10-19", Mood: models.MoodGood, SleepHours: 7.5, StressLevel: 4,
		})
		if err != nil {
			t.Fatalf("create wellbeing: %v", err)
		}
	}

	entries, err := s.ListWellbeing(ctx, u.ID)
	if err != nil {
		t.Fatalf("list wellbeing: %v", err)
	}
	if len(entries) != WellbeingHistory {
		t.Fatalf("entries: want=%d got=%d", WellbeingHistory, len(entries))
	}
	if entries[0].SleepHours != 7.5 || entries[0].StressLevel != 4 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestDeleteStudySession(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	u := mustUser(t, s, "alex@example.com")

	ss, err := s.CreateStudySession(ctx, u.ID, "Physics", 60, "2026-10-18", "lab report")
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if err := s.DeleteStudySession(ctx, ss.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.GetStudySession(ctx, ss.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got=%v", err)
	}
	if err := s.DeleteStudySession(ctx, ss.ID); err != nil {
		t.Fatalf("second delete should be a no-op, got=%v", err)
	}
}

func TestSnapshot(t *testing.T) {
	ctx := context.Background()
	s, _ := openTemp(t)
	defer s.Close()
	u := mustUser(t, s, "alex@example.com")

	dst := filepath.Join(t.TempDir(), "copy.db")
	if err := s.Snapshot(ctx, dst); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if err := s.Snapshot(ctx, dst); err == nil {
		t.Fatalf("expected snapshot onto an existing file to fail")
	}

	cp, err := Open(ctx, dst, nil)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer cp.Close()
	if _, err := cp.GetUser(ctx, u.ID); err != nil {
		t.Fatalf("user missing from snapshot: %v", err)
	}
}
