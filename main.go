package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jackwu/textpad/session"
	"github.com/jackwu/textpad/tui"
)

func main() {
	if path := os.Getenv("TEXTPAD_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "textpad")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	sess := session.New()
	if len(os.Args) > 1 {
		if err := sess.Open(os.Args[1]); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// a new file: keep the name, the first save creates it
				sess.Path = os.Args[1]
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}

	p := tea.NewProgram(tui.NewModel(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
