package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the UI understands. Screen handlers pick the
// subset that applies to them.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	Enter  key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Filter key.Binding

	Refresh key.Binding
	Tab     key.Binding
	Copy    key.Binding

	Topics  key.Binding
	Groups  key.Binding
	Brokers key.Binding
	Logs    key.Binding

	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Purge      key.Binding
	Partitions key.Binding

	Messages key.Binding
	Produce  key.Binding
	Offset   key.Binding
	Pause    key.Binding

	Sort    key.Binding
	SortDir key.Binding
	Follow  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "bottom"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch tab"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Topics: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "topics"),
		),
		Groups: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "groups"),
		),
		Brokers: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "brokers"),
		),
		Logs: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "logs"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Purge: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "purge"),
		),
		Partitions: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add partitions"),
		),
		Messages: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "messages"),
		),
		Produce: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "produce"),
		),
		Offset: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "start offset"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort field"),
		),
		SortDir: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sort direction"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Filter, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Enter, k.Back, k.Filter, k.Refresh, k.Tab, k.Copy},
		{k.Topics, k.Groups, k.Brokers, k.Logs},
		{k.New, k.Edit, k.Delete, k.Purge, k.Partitions},
		{k.Messages, k.Produce, k.Offset, k.Pause, k.Sort, k.SortDir, k.Follow},
		{k.Help, k.Quit},
	}
}
