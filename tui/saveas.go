package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) enterSaveAs(quitAfter bool) (tea.Model, tea.Cmd) {
	pi := textinput.New()
	pi.CharLimit = 300
	pi.SetValue(m.sess.DefaultName())
	pi.CursorEnd()
	cmd := pi.Focus()

	m.pathInput = pi
	m.saveAsErr = ""
	m.quitAfterSave = quitAfter
	m.editor.Blur()
	m.mode = modeSaveAs
	return m, cmd
}

func (m Model) updateSaveAs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// cancel leaves path and modified flag untouched; a pending quit
		// is abandoned too
		m.quitAfterSave = false
		m.mode = modeEdit
		return m, m.editor.Focus()

	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if path == "" {
			m.saveAsErr = "path required"
			return m, nil
		}
		if err := m.sess.SaveAs(path); err != nil {
			return m.showError("Save As", err, modeSaveAs)
		}
		if m.quitAfterSave {
			m.quitting = true
			return m, tea.Quit
		}
		m.status = "Saved " + m.sess.Title()
		m.mode = modeEdit
		return m, m.editor.Focus()
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	m.saveAsErr = ""
	return m, cmd
}

func (m Model) viewSaveAsBox() string {
	title := dialogTitleStyle.Render("Save As")
	errLine := ""
	if m.saveAsErr != "" {
		errLine = "\n" + errorTextStyle.Render(m.saveAsErr)
	}
	content := fmt.Sprintf(
		"%s\n\n%s%s\n\n%s",
		title,
		m.pathInput.View(),
		errLine,
		dimStyle.Render("Enter: save  Esc: cancel"),
	)
	return dialogStyle.Render(content)
}
