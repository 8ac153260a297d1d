package tui

import (
	"strconv"

	"github.com/Skyhigh44/Productivity/internal/model"
	"github.com/Skyhigh44/Productivity/internal/projects"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

const emptyProjectHint = "No tasks yet. Press a to add one."

type projectRow struct {
	projectID string
	// taskID is empty for a project header row.
	taskID string
}

func (r projectRow) isTask() bool { return r.taskID != "" }

type projectsPanel struct {
	board  projects.Board
	cursor int

	renaming bool
	target   projectRow
	rename   textinput.Model

	log *logrus.Entry
}

func newProjectsPanel(log *logrus.Entry) projectsPanel {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 0
	in.Width = 40
	return projectsPanel{board: projects.NewBoard(), rename: in, log: log}
}

func (p projectsPanel) capturesText() bool { return p.renaming }

// rows lists the selectable rows: every project, then its tasks when expanded.
func (p projectsPanel) rows() []projectRow {
	var out []projectRow
	for _, pr := range p.board.Projects() {
		out = append(out, projectRow{projectID: pr.ID})
		if !pr.Expanded {
			continue
		}
		for _, t := range pr.Tasks {
			out = append(out, projectRow{projectID: pr.ID, taskID: t.ID})
		}
	}
	return out
}

func (p projectsPanel) selected() (projectRow, bool) {
	rows := p.rows()
	if p.cursor < 0 || p.cursor >= len(rows) {
		return projectRow{}, false
	}
	return rows[p.cursor], true
}

func (p *projectsPanel) clampCursor() {
	p.cursor = clampInt(p.cursor, 0, len(p.rows())-1)
}

func (p *projectsPanel) update(msg tea.KeyMsg) tea.Cmd {
	if p.renaming {
		return p.updateRename(msg)
	}

	row, ok := p.selected()
	switch {
	case key.Matches(msg, keys.Up):
		p.cursor--
	case key.Matches(msg, keys.Down):
		p.cursor++
	case !ok:
	case key.Matches(msg, keys.Toggle):
		if row.isTask() {
			p.board = p.board.ToggleTaskStatus(row.projectID, row.taskID)
		} else {
			p.board = p.board.ToggleExpanded(row.projectID)
		}
	case key.Matches(msg, keys.AddTask):
		if !p.board.CanAddTask(row.projectID) {
			return nil
		}
		p.board = p.board.AddTask(row.projectID)
		p.logf(row.projectID, "task added")
	case key.Matches(msg, keys.Remove):
		if row.isTask() {
			p.board = p.board.RemoveTask(row.projectID, row.taskID)
			p.logf(row.projectID, "task removed")
			// Stay within the same project when its last task goes away.
			if next, ok := p.selected(); !ok || next.projectID != row.projectID {
				p.cursor--
			}
		}
	case key.Matches(msg, keys.Rename):
		p.renaming = true
		p.target = row
		p.rename.SetValue(p.titleOf(row))
		p.rename.CursorEnd()
		p.clampCursor()
		return p.rename.Focus()
	}
	p.clampCursor()
	return nil
}

func (p *projectsPanel) updateRename(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		p.stopRename()
		return nil
	case tea.KeyEnter:
		// Titles are applied verbatim, without trimming.
		title := p.rename.Value()
		if p.target.isTask() {
			p.board = p.board.RenameTask(p.target.projectID, p.target.taskID, title)
		} else {
			p.board = p.board.RenameProject(p.target.projectID, title)
		}
		p.stopRename()
		return nil
	}
	var cmd tea.Cmd
	p.rename, cmd = p.rename.Update(msg)
	return cmd
}

func (p *projectsPanel) stopRename() {
	p.renaming = false
	p.target = projectRow{}
	p.rename.Blur()
	p.rename.SetValue("")
}

func (p projectsPanel) titleOf(row projectRow) string {
	pr, ok := p.board.Find(row.projectID)
	if !ok {
		return ""
	}
	if !row.isTask() {
		return pr.Title
	}
	for _, t := range pr.Tasks {
		if t.ID == row.taskID {
			return t.Title
		}
	}
	return ""
}

func (p projectsPanel) logf(projectID, msg string) {
	if p.log == nil {
		return
	}
	pr, _ := p.board.Find(projectID)
	p.log.WithFields(logrus.Fields{"project": projectID, "tasks": len(pr.Tasks)}).Debug(msg)
}

func (p projectsPanel) renameView(width int) string {
	if !p.renaming {
		return ""
	}
	title := "Rename project"
	if p.target.isTask() {
		title = "Rename task"
	}
	return renderModalBox(width, title, renderInputLine(modalBodyWidth(width), p.rename.View()))
}

func (p projectsPanel) view(width, height int, focused bool) string {
	var lines []string
	cursorLine := 0
	rowIdx := 0

	heading := styleHeading().Render("Projects")
	if focused {
		heading = lipgloss.NewStyle().Foreground(colorAccent).Render("■ ") + heading
	}

	for _, pr := range p.board.Projects() {
		sel := focused && rowIdx == p.cursor
		if rowIdx == p.cursor {
			cursorLine = len(lines)
		}
		lines = append(lines, p.renderProjectRow(pr, width, sel))
		rowIdx++
		if !pr.Expanded {
			continue
		}
		if len(pr.Tasks) == 0 {
			lines = append(lines, "    "+styleMuted().Italic(true).Render(emptyProjectHint))
			continue
		}
		for _, t := range pr.Tasks {
			sel := focused && rowIdx == p.cursor
			if rowIdx == p.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, renderTaskRow(t, width, sel))
			rowIdx++
		}
	}

	avail := height - 2
	if avail < 1 {
		avail = 1
	}
	start := 0
	if cursorLine >= avail {
		start = cursorLine - avail + 1
	}
	end := start + avail
	if end > len(lines) {
		end = len(lines)
	}
	return joinLines(append([]string{heading, ""}, lines[start:end]...)...)
}

func (p projectsPanel) renderProjectRow(pr model.Project, width int, selected bool) string {
	twisty := glyphTwistyCollapsed()
	if pr.Expanded {
		twisty = glyphTwistyExpanded()
	}
	count := styleMuted().Render("(" + strconv.Itoa(len(pr.Tasks)) + "/" + strconv.Itoa(projects.MaxTasks) + ")")

	add := lipgloss.NewStyle().Foreground(colorAccent).Render("+ Add Task")
	if !p.board.CanAddTask(pr.ID) {
		add = styleMuted().Strikethrough(true).Render("+ Add Task")
	}

	left := twisty + " " + lipgloss.NewStyle().Bold(true).Render(pr.Title) + " " + count
	return renderRow(left, add, width, selected)
}

func renderTaskRow(t model.Task, width int, selected bool) string {
	done := t.Status == model.TaskCompleted
	title := lipgloss.NewStyle().Foreground(colorSurfaceFg).Render(t.Title)
	if done {
		title = lipgloss.NewStyle().Foreground(colorDoneFg).Strikethrough(true).Render(t.Title)
	}
	left := "  " + styleMuted().Render(glyphTreeBranch()) + " " + glyphCheckbox(done) + " " + title
	return renderRow(left, "", width, selected)
}

// renderRow lays out a full-width row with optional right-aligned text.
func renderRow(left, right string, width int, selected bool) string {
	lw := lipgloss.Width(left)
	rw := lipgloss.Width(right)
	gap := width - lw - rw
	var row string
	if right == "" || gap < 1 {
		row = normalizePane(left, width, 1)
	} else {
		row = left + lipgloss.NewStyle().Width(gap).Render("") + right
	}
	if selected {
		return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg).Render(row)
	}
	return row
}
