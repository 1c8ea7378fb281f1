package bubbletea

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/docview-dev/docview"
	"github.com/docview-dev/docview/goldmark"
	"github.com/docview-dev/docview/term"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the document viewer. It owns a single
// source-text property: every change discards the rendered document and
// rebuilds it from scratch. There is no caching or diffing between
// renders.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	theme     docview.Theme
	activator docview.Activator

	files    []string
	file     int
	maxWidth int

	text     string
	document *docview.Document
	links    []*docview.Link
	linkSel  int

	mutedStyle lipgloss.Style
	errorStyle lipgloss.Style

	err   error
	ready bool
}

// New creates a viewer over the given files. The first file is loaded by
// Init; tab cycles through the rest. The activator receives resolved link
// targets when the user activates a hyperlink.
func New(files []string, theme docview.Theme, activator docview.Activator) Model {
	return Model{
		theme:      theme,
		activator:  activator,
		files:      files,
		mutedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(theme.Muted))).Faint(true),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(strconv.Itoa(theme.Error))),
	}
}

// WithMaxWidth caps the rendered line width. Zero means the full
// viewport width.
func (m Model) WithMaxWidth(width int) Model {
	m.maxWidth = width
	return m.refresh()
}

// Document returns the current rendered document, or nil after a render
// error.
func (m Model) Document() *docview.Document { return m.document }

// Err returns the last render or load error, if any.
func (m Model) Err() error { return m.err }

// Text returns the current source text.
func (m Model) Text() string { return m.text }

// CurrentFile returns the path of the displayed file, or "" when the
// viewer was fed text directly.
func (m Model) CurrentFile() string {
	if len(m.files) == 0 {
		return ""
	}
	return m.files[m.file]
}

// LinkTarget returns the selected hyperlink's resolved target, or "".
func (m Model) LinkTarget() string {
	if len(m.links) == 0 {
		return ""
	}
	return m.links[m.linkSel].Target.String()
}

// SetText replaces the source text and rebuilds the whole document. The
// previous document and viewport content are discarded wholesale; nothing
// is reused between renders.
func (m Model) SetText(text string) Model {
	m.text = text
	m.document, m.err = goldmark.Render(text)

	m.links = nil
	m.linkSel = 0
	if m.err == nil {
		m.document.Runs(func(run docview.Run) {
			if link, ok := run.(*docview.Link); ok {
				m.links = append(m.links, link)
			}
		})
	}
	return m.refresh()
}

// refresh re-renders the document into the viewport at its current width.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	if m.err != nil {
		m.Viewport.SetContent(m.errorStyle.Render(m.err.Error()))
		return m
	}
	if m.document == nil {
		m.Viewport.SetContent("")
		return m
	}
	width := m.Viewport.Width
	if m.maxWidth > 0 && width > m.maxWidth {
		width = m.maxWidth
	}
	content, err := term.Render(m.document, width, m.theme)
	if err != nil {
		m.err = err
		m.Viewport.SetContent(m.errorStyle.Render(err.Error()))
		return m
	}
	m.Viewport.SetContent(content)
	m.Viewport.GotoTop()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if len(m.files) > 0 {
		return loadFile(m.files[0])
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case SetTextMsg:
		// Stale watcher events for files other than the displayed one
		// are dropped; the content slot always reflects the latest text
		// of the current file.
		if msg.Path != "" && len(m.files) > 0 && msg.Path != m.CurrentFile() {
			return m, nil
		}
		return m.SetText(msg.Text), nil

	case loadErrMsg:
		m.err = msg.err
		return m.refresh(), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	// Re-render at the new width.
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "tab":
		if len(m.files) > 1 {
			m.file = (m.file + 1) % len(m.files)
			return m, loadFile(m.files[m.file])
		}
		return m, nil

	case "shift+tab":
		if len(m.files) > 1 {
			m.file = (m.file - 1 + len(m.files)) % len(m.files)
			return m, loadFile(m.files[m.file])
		}
		return m, nil

	case "[":
		if len(m.links) > 0 {
			m.linkSel = (m.linkSel - 1 + len(m.links)) % len(m.links)
		}
		return m, nil

	case "]":
		if len(m.links) > 0 {
			m.linkSel = (m.linkSel + 1) % len(m.links)
		}
		return m, nil

	case "o", "enter":
		if len(m.links) > 0 && m.activator != nil {
			// The interaction is handled here: the key is consumed and
			// the resolved target forwarded to the activation
			// collaborator, whose errors are its own concern.
			target := m.links[m.linkSel].Target.String()
			activator := m.activator
			return m, func() tea.Msg {
				_ = activator.Activate(target)
				return nil
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.errorStyle.Render(m.err.Error())
	}

	var parts []string
	if file := m.CurrentFile(); file != "" {
		name := filepath.Base(file)
		if len(m.files) > 1 {
			name = fmt.Sprintf("%s (%d/%d)", name, m.file+1, len(m.files))
		}
		parts = append(parts, name)
	}
	if target := m.LinkTarget(); target != "" {
		parts = append(parts, fmt.Sprintf("link %d/%d: %s", m.linkSel+1, len(m.links), target))
	}
	parts = append(parts, fmt.Sprintf("%3.0f%%", m.Viewport.ScrollPercent()*100))

	return m.mutedStyle.Render(strings.Join(parts, "  •  "))
}
