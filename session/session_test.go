package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenLoadsFileAndClearsModified(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "first line\nsecond line"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	s.SetText("scratch")
	if err := s.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Text != content {
		t.Errorf("Text = %q, want %q", s.Text, content)
	}
	if s.Path != path {
		t.Errorf("Path = %q, want %q", s.Path, path)
	}
	if s.Modified {
		t.Error("Modified should be false after Open")
	}
}

func TestOpenFailureLeavesSessionUntouched(t *testing.T) {
	s := New()
	s.SetText("keep me")
	s.Path = "old.txt"
	s.Modified = true

	err := s.Open(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if s.Text != "keep me" || s.Path != "old.txt" || !s.Modified {
		t.Errorf("session changed on failed open: %+v", s)
	}
}

func TestOpenRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.dat")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0o644); err != nil {
		t.Fatal(err)
	}

	s := New()
	if err := s.Open(path); err == nil {
		t.Fatal("expected error for non-UTF-8 file")
	}
	if s.Path != "" {
		t.Errorf("Path = %q, want empty", s.Path)
	}
}

func TestSetTextMarksModified(t *testing.T) {
	s := New()
	s.SetText("hello")
	if !s.Modified {
		t.Error("SetText should mark the session modified")
	}

	s.Modified = false
	s.SetText("hello") // unchanged text is not an edit
	if s.Modified {
		t.Error("SetText with identical text should not mark modified")
	}
}

func TestSaveWithoutPathReturnsErrNoPath(t *testing.T) {
	s := New()
	s.SetText("anything")
	if err := s.Save(); !errors.Is(err, ErrNoPath) {
		t.Fatalf("Save = %v, want ErrNoPath", err)
	}
	if !s.Modified {
		t.Error("failed Save must not clear the modified flag")
	}
}

func TestSaveWritesVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := New()
	s.Path = path
	s.SetText("no trailing newline")

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if s.Modified {
		t.Error("Modified should be false after Save")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "no trailing newline" {
		t.Errorf("file contents = %q", data)
	}
}

func TestSaveAsSetsPathAndClearsModified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "renamed.txt")
	s := New()
	s.SetText("body")

	if err := s.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if s.Path != path {
		t.Errorf("Path = %q, want %q", s.Path, path)
	}
	if s.Modified {
		t.Error("Modified should be false after SaveAs")
	}
}

func TestSaveAsFailureKeepsPathAndModified(t *testing.T) {
	s := New()
	s.Path = "old.txt"
	s.SetText("body")

	dest := filepath.Join(t.TempDir(), "no-such-dir", "out.txt")
	if err := s.SaveAs(dest); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if s.Path != "old.txt" {
		t.Errorf("Path = %q, want old.txt", s.Path)
	}
	if !s.Modified {
		t.Error("failed SaveAs must not clear the modified flag")
	}
}

func TestSaveAsEmptyPathInvalid(t *testing.T) {
	s := New()
	if err := s.SaveAs(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestTitle(t *testing.T) {
	s := New()
	if got := s.Title(); got != "Untitled" {
		t.Errorf("Title = %q, want Untitled", got)
	}
	s.Path = "/home/user/docs/readme.txt"
	if got := s.Title(); got != "readme.txt" {
		t.Errorf("Title = %q, want readme.txt", got)
	}
}

func TestDefaultName(t *testing.T) {
	s := New()
	if got := s.DefaultName(); got != "Untitled.txt" {
		t.Errorf("DefaultName = %q, want Untitled.txt", got)
	}
	s.Path = "a/b.md"
	if got := s.DefaultName(); got != "a/b.md" {
		t.Errorf("DefaultName = %q, want a/b.md", got)
	}
}
