package projects

import (
	"strconv"

	"github.com/Skyhigh44/Productivity/internal/model"

	"github.com/google/uuid"
)

const (
	// MaxTasks is the per-project task cap; AddTask is a no-op at the cap.
	MaxTasks = 15

	DefaultProjectCount = 5
	NewTaskTitle        = "New Task"
)

var newTaskID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Board is the fixed set of projects. It is a value: every operation returns
// a new Board with a fresh project slice and leaves the receiver unchanged.
// Operations on unknown ids return an equivalent board.
type Board struct {
	projects []model.Project
}

// NewBoard returns projects "1".."5" titled "Project 1".."Project 5",
// collapsed and without tasks.
func NewBoard() Board {
	ps := make([]model.Project, 0, DefaultProjectCount)
	for i := 1; i <= DefaultProjectCount; i++ {
		id := strconv.Itoa(i)
		ps = append(ps, model.Project{ID: id, Title: "Project " + id, Tasks: []model.Task{}})
	}
	return Board{projects: ps}
}

func (b Board) Len() int { return len(b.projects) }

// Projects returns a deep copy of the projects in board order.
func (b Board) Projects() []model.Project {
	out := make([]model.Project, len(b.projects))
	for i, p := range b.projects {
		out[i] = cloneProject(p)
	}
	return out
}

func (b Board) Find(projectID string) (model.Project, bool) {
	for _, p := range b.projects {
		if p.ID == projectID {
			return cloneProject(p), true
		}
	}
	return model.Project{}, false
}

func (b Board) CanAddTask(projectID string) bool {
	p, ok := b.Find(projectID)
	return ok && len(p.Tasks) < MaxTasks
}

func (b Board) RenameProject(projectID, title string) Board {
	return b.mapProject(projectID, func(p model.Project) model.Project {
		p.Title = title
		return p
	})
}

func (b Board) ToggleExpanded(projectID string) Board {
	return b.mapProject(projectID, func(p model.Project) model.Project {
		p.Expanded = !p.Expanded
		return p
	})
}

// AddTask appends a pending "New Task" while the project is below MaxTasks.
func (b Board) AddTask(projectID string) Board {
	return b.mapProject(projectID, func(p model.Project) model.Project {
		if len(p.Tasks) >= MaxTasks {
			return p
		}
		p.Tasks = append(p.Tasks, model.Task{
			ID:     newTaskID(),
			Title:  NewTaskTitle,
			Status: model.TaskPending,
		})
		return p
	})
}

// RenameTask stores title verbatim (no trimming, no length bound).
func (b Board) RenameTask(projectID, taskID, title string) Board {
	return b.mapTask(projectID, taskID, func(t model.Task) model.Task {
		t.Title = title
		return t
	})
}

func (b Board) ToggleTaskStatus(projectID, taskID string) Board {
	return b.mapTask(projectID, taskID, func(t model.Task) model.Task {
		t.Status = t.Status.Toggled()
		return t
	})
}

// RemoveTask drops exactly the task with taskID; the rest keep their order.
func (b Board) RemoveTask(projectID, taskID string) Board {
	return b.mapProject(projectID, func(p model.Project) model.Project {
		kept := p.Tasks[:0]
		for _, t := range p.Tasks {
			if t.ID != taskID {
				kept = append(kept, t)
			}
		}
		p.Tasks = kept
		return p
	})
}

type Stats struct {
	Projects  int `json:"projects"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

func (b Board) Stats() Stats {
	st := Stats{Projects: b.Len()}
	for _, p := range b.projects {
		for _, t := range p.Tasks {
			if t.Status == model.TaskCompleted {
				st.Completed++
			} else {
				st.Pending++
			}
		}
	}
	return st
}

// mapProject rebuilds the project list, handing fn a private copy of the
// matching project.
func (b Board) mapProject(projectID string, fn func(model.Project) model.Project) Board {
	next := make([]model.Project, len(b.projects))
	for i, p := range b.projects {
		if p.ID == projectID {
			next[i] = fn(cloneProject(p))
			continue
		}
		next[i] = p
	}
	return Board{projects: next}
}

func (b Board) mapTask(projectID, taskID string, fn func(model.Task) model.Task) Board {
	return b.mapProject(projectID, func(p model.Project) model.Project {
		for i := range p.Tasks {
			if p.Tasks[i].ID == taskID {
				p.Tasks[i] = fn(p.Tasks[i])
			}
		}
		return p
	})
}

func cloneProject(p model.Project) model.Project {
	tasks := make([]model.Task, len(p.Tasks))
	copy(tasks, p.Tasks)
	p.Tasks = tasks
	return p
}
