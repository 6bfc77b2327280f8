package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// DefaultExt is the extension suggested for files that have never been saved.
const DefaultExt = ".txt"

// ErrNoPath is returned by Save when the session has no associated file,
// so the caller can fall through to a save-as flow.
var ErrNoPath = errors.New("no file path")

// Session is the currently open document: its text, the file it is
// associated with (if any), and whether the text has changed since the
// last load or save.
type Session struct {
	Text     string
	Path     string // empty until the document is opened or saved
	Modified bool
}

func New() *Session {
	return &Session{}
}

// Open reads path as UTF-8 text and replaces the session contents.
// On failure the session is left untouched.
func (s *Session) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("open %s: not valid UTF-8 text", path)
	}
	s.Text = string(data)
	s.Path = path
	s.Modified = false
	return nil
}

// Save writes the text back to the associated file. Returns ErrNoPath when
// the session has never been given one.
func (s *Session) Save() error {
	if s.Path == "" {
		return ErrNoPath
	}
	return s.write(s.Path)
}

// SaveAs writes the text to path and associates the session with it.
// On failure the previous path and the modified flag are kept.
func (s *Session) SaveAs(path string) error {
	if path == "" {
		return os.ErrInvalid
	}
	if err := s.write(path); err != nil {
		return err
	}
	s.Path = path
	return nil
}

func (s *Session) write(path string) error {
	// text is written verbatim, no newline normalization
	if err := os.WriteFile(path, []byte(s.Text), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	s.Modified = false
	return nil
}

// SetText replaces the session text, marking it modified when it actually
// changed. The UI calls this after every edit.
func (s *Session) SetText(text string) {
	if text == s.Text {
		return
	}
	s.Text = text
	s.Modified = true
}

// Title is the name shown in the title bar: the final path component, or a
// placeholder for a session that was never saved.
func (s *Session) Title() string {
	if s.Path == "" {
		return "Untitled"
	}
	return filepath.Base(s.Path)
}

// DefaultName is the suggested target for a save-as prompt.
func (s *Session) DefaultName() string {
	if s.Path != "" {
		return s.Path
	}
	return "Untitled" + DefaultExt
}
