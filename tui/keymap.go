package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the application-level bindings. Editing keys belong to the
// textarea and are not listed here.
type KeyMap struct {
	Open   key.Binding
	Save   key.Binding
	SaveAs key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		// ctrl+shift+s is not reported by every terminal, keep an alt fallback
		SaveAs: key.NewBinding(key.WithKeys("ctrl+shift+s", "alt+s"), key.WithHelp("alt+s", "save as")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q", "ctrl+c"), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Save, k.SaveAs, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Open, k.Save}, {k.SaveAs, k.Quit}}
}
