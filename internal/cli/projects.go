package cli

import (
	"fmt"
	"strings"

	"github.com/Skyhigh44/Productivity/internal/model"
	"github.com/Skyhigh44/Productivity/internal/projects"

	"github.com/spf13/cobra"
)

type boardSummary struct {
	Projects []model.Project `json:"projects"`
	Stats    projects.Stats  `json:"stats"`
	MaxTasks int             `json:"maxTasks"`
}

func (s boardSummary) Text() string {
	var b strings.Builder
	for _, p := range s.Projects {
		fmt.Fprintf(&b, "%-12s %2d/%d tasks\n", p.Title, len(p.Tasks), s.MaxTasks)
	}
	fmt.Fprintf(&b, "%d projects, %d pending, %d completed", s.Stats.Projects, s.Stats.Pending, s.Stats.Completed)
	return b.String()
}

func newProjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "Show the starting project board (tasks live only inside a dashboard session)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			board := projects.NewBoard()
			return writeOut(cmd, app, boardSummary{
				Projects: board.Projects(),
				Stats:    board.Stats(),
				MaxTasks: projects.MaxTasks,
			})
		},
	}
}
