package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// updateConfirmQuit is the close guard: it is only entered when the session
// is modified, and only an explicit answer leaves it.
func (m Model) updateConfirmQuit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.quitting = true
		return m, tea.Quit

	case "n", "N", "esc":
		m.mode = modeEdit
		return m, m.editor.Focus()

	case "s", "S":
		return m.saveCurrent(true)
	}
	return m, nil
}

func (m Model) viewConfirmBox() string {
	title := dialogTitleStyle.Render("Unsaved Changes")
	content := fmt.Sprintf(
		"%s\n\nSave changes to %s before quitting?\n\n%s",
		title,
		m.sess.Title(),
		dimStyle.Render("S: save  Y: quit without saving  N: cancel"),
	)
	return dialogStyle.Render(content)
}

func (m Model) viewErrorBox() string {
	title := errorTitleStyle.Render(m.errOp + " failed")
	content := fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		title,
		errorTextStyle.Render(m.errText),
		dimStyle.Render("Press any key to continue"),
	)
	return errorDialogStyle.Render(content)
}
