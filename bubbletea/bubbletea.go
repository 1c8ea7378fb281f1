// Package bubbletea provides the interactive Bubble Tea host for rendered
// documents: a scrollable viewport owning a single source-text property.
package bubbletea

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps the model in a Bubble Tea program with the standard
// options. The returned program's Send is safe to call from other
// goroutines; the file watcher uses it to deliver SetTextMsg.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
}

// SetTextMsg replaces the viewer's source text, triggering a full rebuild
// of the rendered document. If Path is set, the message only applies while
// that file is the one being displayed.
type SetTextMsg struct {
	Path string
	Text string
}

// loadErrMsg reports a failed file read.
type loadErrMsg struct {
	err error
}

// loadFile reads a file off the Update loop and delivers its content as a
// SetTextMsg.
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return loadErrMsg{err: err}
		}
		return SetTextMsg{Path: path, Text: string(data)}
	}
}
