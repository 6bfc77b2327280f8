package tui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) enterOpen() (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.CurrentDirectory = m.startDir()
	fp.Height = max(m.height-4, 1)
	m.picker = fp
	m.editor.Blur()
	m.mode = modeOpen
	return m, m.picker.Init()
}

// startDir is where the open dialog begins browsing: next to the current
// file, otherwise the working directory.
func (m Model) startDir() string {
	if m.sess.Path != "" {
		return filepath.Dir(m.sess.Path)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (m Model) updateOpen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// esc cancels before the picker sees it (the picker binds esc to "up a
	// directory")
	if msg.String() == "esc" {
		m.mode = modeEdit
		return m, m.editor.Focus()
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if ok, path := m.picker.DidSelectFile(msg); ok {
		return m.openFile(path)
	}
	return m, cmd
}

// openFile loads path into the session and the editor. On failure the
// session keeps its previous contents and an error dialog is shown.
func (m Model) openFile(path string) (tea.Model, tea.Cmd) {
	if err := m.sess.Open(path); err != nil {
		return m.showError("Open", err, modeOpen)
	}
	m.editor.SetValue(m.sess.Text)
	m.status = "Opened " + m.sess.Title()
	m.mode = modeEdit
	return m, m.editor.Focus()
}

func (m Model) viewOpen() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Open File") + dimStyle.Render("  "+m.picker.CurrentDirectory) + "\n")
	b.WriteString(m.picker.View() + "\n")
	b.WriteString(helpStyle.Render("  Enter: open  Esc: cancel"))
	return b.String()
}
