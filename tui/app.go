package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jackwu/textpad/session"
)

type mode int

const (
	modeEdit mode = iota
	modeOpen
	modeSaveAs
	modeConfirmQuit
	modeError
)

type Model struct {
	sess *session.Session
	keys KeyMap

	editor    textarea.Model
	picker    filepicker.Model
	pathInput textinput.Model
	help      help.Model

	mode     mode
	prevMode mode // screen resumed after an error dialog is dismissed

	status        string // transient status bar message
	errOp         string // operation shown as the error dialog title
	errText       string
	saveAsErr     string // inline validation error in the save-as prompt
	quitAfterSave bool   // save-as was entered from the quit prompt

	width    int
	height   int
	quitting bool
}

func NewModel(sess *session.Session) Model {
	ed := textarea.New()
	ed.Prompt = ""
	ed.CharLimit = 0
	ed.MaxHeight = 0
	ed.MaxWidth = 0
	ed.ShowLineNumbers = false
	ed.SetValue(sess.Text)
	ed.Focus()

	return Model{
		sess:   sess,
		keys:   DefaultKeyMap(),
		editor: ed,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(msg.Width)
		m.editor.SetHeight(max(msg.Height-3, 1))
		m.picker.Height = max(msg.Height-4, 1)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeOpen:
			return m.updateOpen(msg)
		case modeSaveAs:
			return m.updateSaveAs(msg)
		case modeConfirmQuit:
			return m.updateConfirmQuit(msg)
		case modeError:
			return m.updateError(msg)
		}
	}

	// non-key messages (blink, directory reads) go to the active widget
	var cmd tea.Cmd
	switch m.mode {
	case modeEdit:
		m.editor, cmd = m.editor.Update(msg)
	case modeOpen:
		m.picker, cmd = m.picker.Update(msg)
	case modeSaveAs:
		m.pathInput, cmd = m.pathInput.Update(msg)
	}
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.sess.Modified {
			m.editor.Blur()
			m.mode = modeConfirmQuit
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		return m.enterOpen()

	case key.Matches(msg, m.keys.Save):
		return m.saveCurrent(false)

	case key.Matches(msg, m.keys.SaveAs):
		return m.enterSaveAs(false)
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != m.sess.Text {
		m.sess.SetText(v)
		m.status = ""
	}
	return m, cmd
}

// saveCurrent saves to the associated path, falling through to the save-as
// prompt when there is none. quitAfter carries the intent of a
// save-then-quit answer from the close guard.
func (m Model) saveCurrent(quitAfter bool) (tea.Model, tea.Cmd) {
	err := m.sess.Save()
	switch {
	case errors.Is(err, session.ErrNoPath):
		return m.enterSaveAs(quitAfter)
	case err != nil:
		return m.showError("Save", err, modeEdit)
	}
	if quitAfter {
		m.quitting = true
		return m, tea.Quit
	}
	m.status = "Saved " + m.sess.Title()
	m.mode = modeEdit
	return m, m.editor.Focus()
}

func (m Model) showError(op string, err error, resume mode) (tea.Model, tea.Cmd) {
	m.errOp = op
	m.errText = err.Error()
	m.prevMode = resume
	m.mode = modeError
	return m, nil
}

// any key dismisses the error dialog
func (m Model) updateError(tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = m.prevMode
	switch m.prevMode {
	case modeEdit:
		return m, m.editor.Focus()
	case modeSaveAs:
		return m, m.pathInput.Focus()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.mode {
	case modeOpen:
		return m.viewOpen()
	case modeSaveAs:
		return m.centerDialog(m.viewSaveAsBox())
	case modeConfirmQuit:
		return m.centerDialog(m.viewConfirmBox())
	case modeError:
		return m.centerDialog(m.viewErrorBox())
	}
	return m.viewEdit()
}

func (m Model) viewEdit() string {
	var b strings.Builder
	b.WriteString(m.renderTitleBar() + "\n")
	b.WriteString(m.editor.View() + "\n")
	b.WriteString(m.renderStatusBar() + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTitleBar() string {
	name := m.sess.Title()
	name = runewidth.Truncate(name, max(m.width-12, 8), "…")
	bar := titleStyle.Render("textpad") + " " + name
	if m.sess.Modified {
		bar += " " + modifiedStyle.Render("●")
	}
	return bar
}

func (m Model) renderStatusBar() string {
	line := m.editor.Line() + 1
	col := m.editor.LineInfo().ColumnOffset + 1
	right := fmt.Sprintf("Ln %d, Col %d  │  %d lines", line, col, m.editor.LineCount())

	left := m.status
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return statusBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) centerDialog(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
