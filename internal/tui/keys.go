package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	Tab      key.Binding
	ShiftTab key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding

	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Save      key.Binding

	Toggle  key.Binding
	AddTask key.Binding
	Rename  key.Binding
	Remove  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),

	Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	ShiftTab: key.NewBinding(key.WithKeys("shift+tab")),
	Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),

	PrevMonth: key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[/p", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]/n", "next month")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),

	Toggle:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("space", "toggle")),
	AddTask: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add task")),
	Rename:  key.NewBinding(key.WithKeys("e", "r"), key.WithHelp("e", "rename")),
	Remove:  key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
}

// bindings adapts a flat list of bindings to help.KeyMap for the footer.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func authHelp() bindings {
	return bindings{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		keys.ForceQ,
	}
}

func cardsHelp() bindings {
	return bindings{keys.Left, keys.Right, keys.Enter, keys.Tab, keys.Help, keys.Quit}
}

func calendarHelp() bindings {
	return bindings{
		keys.PrevMonth, keys.NextMonth, keys.Today,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add note")),
		keys.Tab, keys.Help,
	}
}

func noteFormHelp() bindings {
	return bindings{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		keys.Save,
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func projectsHelp() bindings {
	return bindings{keys.Toggle, keys.AddTask, keys.Rename, keys.Remove, keys.Tab, keys.Help}
}

func renameHelp() bindings {
	return bindings{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
