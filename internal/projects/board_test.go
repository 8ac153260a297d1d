package projects

import (
	"reflect"
	"testing"

	"github.com/Skyhigh44/Productivity/internal/model"
)

func mustFind(t *testing.T, b Board, id string) model.Project {
	t.Helper()
	p, ok := b.Find(id)
	if !ok {
		t.Fatalf("expected project %q", id)
	}
	return p
}

func taskIDs(p model.Project) []string {
	out := make([]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestNewBoard_FiveCollapsedProjects(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	ps := b.Projects()
	if len(ps) != 5 {
		t.Fatalf("expected 5 projects; got %d", len(ps))
	}
	for i, p := range ps {
		wantID := string(rune('1' + i))
		if p.ID != wantID || p.Title != "Project "+wantID {
			t.Fatalf("unexpected project %d: %#v", i, p)
		}
		if p.Expanded || len(p.Tasks) != 0 {
			t.Fatalf("expected collapsed empty project; got %#v", p)
		}
	}
}

func TestAddTask_DefaultsAndCap(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	for i := 0; i < MaxTasks; i++ {
		b = b.AddTask("1")
	}
	p := mustFind(t, b, "1")
	if len(p.Tasks) != MaxTasks {
		t.Fatalf("expected %d tasks; got %d", MaxTasks, len(p.Tasks))
	}
	for _, task := range p.Tasks {
		if task.Title != NewTaskTitle || task.Status != model.TaskPending {
			t.Fatalf("unexpected new task: %#v", task)
		}
	}
	if b.CanAddTask("1") {
		t.Fatalf("expected CanAddTask=false at the cap")
	}

	before := taskIDs(p)
	b = b.AddTask("1")
	after := taskIDs(mustFind(t, b, "1"))
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected 16th add to be a no-op")
	}
}

func TestToggleTaskStatus_TwiceRestores(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("2")
	id := mustFind(t, b, "2").Tasks[0].ID

	b1 := b.ToggleTaskStatus("2", id)
	if got := mustFind(t, b1, "2").Tasks[0].Status; got != model.TaskCompleted {
		t.Fatalf("expected completed; got %q", got)
	}
	b2 := b1.ToggleTaskStatus("2", id)
	if got := mustFind(t, b2, "2").Tasks[0].Status; got != model.TaskPending {
		t.Fatalf("expected pending; got %q", got)
	}
}

func TestRemoveTask_PreservesOrder(t *testing.T) {
	t.Parallel()

	b := NewBoard()
	for i := 0; i < 4; i++ {
		b = b.AddTask("3")
	}
	ids := taskIDs(mustFind(t, b, "3"))

	b = b.RemoveTask("3", ids[1])
	got := taskIDs(mustFind(t, b, "3"))
	want := []string{ids[0], ids[2], ids[3]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestRename_Verbatim(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("1")
	tid := mustFind(t, b, "1").Tasks[0].ID

	b = b.RenameProject("1", "  Launch  ").RenameTask("1", tid, "")
	p := mustFind(t, b, "1")
	if p.Title != "  Launch  " {
		t.Fatalf("expected verbatim project title; got %q", p.Title)
	}
	if p.Tasks[0].Title != "" {
		t.Fatalf("expected verbatim empty task title; got %q", p.Tasks[0].Title)
	}
}

func TestToggleExpanded_DoesNotTouchTasks(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("4")
	before := taskIDs(mustFind(t, b, "4"))
	b = b.ToggleExpanded("4")
	p := mustFind(t, b, "4")
	if !p.Expanded {
		t.Fatalf("expected expanded")
	}
	if !reflect.DeepEqual(before, taskIDs(p)) {
		t.Fatalf("expected tasks unchanged")
	}
	if mustFind(t, b.ToggleExpanded("4"), "4").Expanded {
		t.Fatalf("expected collapsed after second toggle")
	}
}

func TestUnknownIDs_NoOp(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("1")
	want := b.Projects()

	ops := []Board{
		b.RenameProject("nope", "x"),
		b.ToggleExpanded("nope"),
		b.AddTask("nope"),
		b.RenameTask("1", "nope", "x"),
		b.RenameTask("nope", "nope", "x"),
		b.ToggleTaskStatus("1", "nope"),
		b.RemoveTask("1", "nope"),
	}
	for i, got := range ops {
		if !reflect.DeepEqual(got.Projects(), want) {
			t.Fatalf("op %d: expected no-op", i)
		}
	}
}

func TestOperations_LeavePreviousBoardUntouched(t *testing.T) {
	t.Parallel()

	b0 := NewBoard().AddTask("1").AddTask("1")
	snapshot := b0.Projects()
	tid := snapshot[0].Tasks[0].ID

	_ = b0.RenameProject("1", "changed")
	_ = b0.ToggleExpanded("1")
	_ = b0.AddTask("1")
	_ = b0.RenameTask("1", tid, "changed")
	_ = b0.ToggleTaskStatus("1", tid)
	_ = b0.RemoveTask("1", tid)

	if !reflect.DeepEqual(b0.Projects(), snapshot) {
		t.Fatalf("expected original board unchanged:\nwant: %#v\ngot:  %#v", snapshot, b0.Projects())
	}
}

func TestProjects_ReturnsDeepCopy(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("1")
	ps := b.Projects()
	ps[0].Title = "mutated"
	ps[0].Tasks[0].Title = "mutated"

	p := mustFind(t, b, "1")
	if p.Title == "mutated" || p.Tasks[0].Title == "mutated" {
		t.Fatalf("expected Projects to return a copy")
	}
}

func TestStats(t *testing.T) {
	t.Parallel()

	b := NewBoard().AddTask("1").AddTask("1").AddTask("5")
	tid := mustFind(t, b, "1").Tasks[0].ID
	b = b.ToggleTaskStatus("1", tid)

	got := b.Stats()
	want := Stats{Projects: 5, Pending: 2, Completed: 1}
	if got != want {
		t.Fatalf("expected %#v; got %#v", want, got)
	}
}
