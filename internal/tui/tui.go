package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

// Run starts the interactive dashboard and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference(opts.Config.NoColor)
	applyThemePreference(opts.Config.Theme)
	applyGlyphPreference(opts.Config.Glyphs)
	setMarkdownTheme(opts.Config.Theme)

	m := newAppModel(opts)
	m.log.WithField("theme", opts.Config.Theme).Debug("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "run tui")
	}
	return nil
}
