package stats

import (
	"fmt"
	"testing"

	"github.com/shreywv2007/StudyFlow/internal/models"
)

func TestUpcomingTasksCap(t *testing.T) {
	var tasks []models.Task
	for i := 8; i >= 1; i-- {
		tasks = append(tasks, models.Task{ID: fmt.Sprint(i), DueDate: fmt.Sprintf("2026-10-%02d", 19+i)})
	}
	tasks = append(tasks,
		models.Task{ID: "past", DueDate: "2026-10-18"},
		models.Task{ID: "done", DueDate: "2026-10-19", Completed: true},
	)

	got := UpcomingTasks(tasks, today, UpcomingLimit)
	if len(got) != 5 {
		t.Fatalf("len: want=5 got=%d", len(got))
	}
	for i, task := range got {
		if want := fmt.Sprint(i + 1); task.ID != want {
			t.Fatalf("position %d: want=%s got=%s", i, want, task.ID)
		}
	}
}

func TestUpcomingIncludesToday(t *testing.T) {
	tasks := []models.Task{{ID: "today", DueDate: "2026-10-19"}}
	got := UpcomingTasks(tasks, today, UpcomingLimit)
	if len(got) != 1 || got[0].ID != "today" {
		t.Fatalf("expected today's task, got=%v", got)
	}
	if empty := UpcomingTasks(nil, today, UpcomingLimit); empty == nil {
		t.Fatalf("expected empty, non-nil slice")
	}
}

func TestTaskCounts(t *testing.T) {
	done, total := TaskCounts([]models.Task{{Completed: true}, {}, {Completed: true}})
	if done != 2 || total != 3 {
		t.Fatalf("counts: want=2/3 got=%d/%d", done, total)
	}
}
