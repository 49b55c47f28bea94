package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/utext/internal/ui/style"
)

const (
	statusRunning   = "running"
	statusPassed    = "passed"
	statusCached    = "cached"
	statusFailed    = "failed"
	statusCancelled = "canceled"
)

// VertexState is the view state of one case.
type VertexState struct {
	ID     string
	Name   string
	Status string
	Err    string
}

type styles struct {
	running lipgloss.Style
	passed  lipgloss.Style
	cached  lipgloss.Style
	failed  lipgloss.Style
	summary lipgloss.Style
}

// Model is the Bubble Tea model of a check session.
type Model struct {
	source   TapeSource
	tape     *progrock.Tape
	vertices []VertexState
	ended    bool
	width    int
	height   int
	spinner  spinner.Model
	styles   styles
}

// NewModel creates a model reading updates from source. tape, when set,
// supplies the totals shown once the session ends.
func NewModel(source TapeSource, tape *progrock.Tape) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Yellow)

	return &Model{
		source:  source,
		tape:    tape,
		spinner: s,
		styles: styles{
			running: lipgloss.NewStyle().Foreground(style.Yellow),
			passed:  lipgloss.NewStyle().Foreground(style.Green),
			cached:  lipgloss.NewStyle().Foreground(style.Slate),
			failed:  lipgloss.NewStyle().Foreground(style.Red),
			summary: lipgloss.NewStyle().Foreground(style.Slate),
		},
	}
}

// Init starts reading the session and animating the spinner.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.source),
		m.spinner.Tick,
	)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		for _, v := range msg.Update.Vertexes {
			m.updateOrAddVertex(v)
		}
		return m, WaitForTape(m.source)
	case MsgTapeEnded:
		m.ended = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	i := -1
	for j := range m.vertices {
		if m.vertices[j].ID == v.Id {
			i = j
			break
		}
	}
	if i < 0 {
		m.vertices = append(m.vertices, VertexState{ID: v.Id, Name: v.Name, Status: statusRunning})
		i = len(m.vertices) - 1
	}

	if v.Completed == nil {
		return
	}
	switch {
	case v.Error != nil:
		m.vertices[i].Status = statusFailed
		m.vertices[i].Err = v.GetError()
	case v.Canceled:
		m.vertices[i].Status = statusCancelled
	case v.Cached:
		m.vertices[i].Status = statusCached
	default:
		m.vertices[i].Status = statusPassed
	}
}

// View renders the most recent cases that fit the window.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 1 && len(m.vertices) >= m.height {
		start = len(m.vertices) - m.height + 1
	}

	for _, v := range m.vertices[start:] {
		var icon, suffix string
		var st lipgloss.Style
		switch v.Status {
		case statusRunning:
			icon, st = m.spinner.View(), m.styles.running
		case statusPassed:
			icon, st = style.Check, m.styles.passed
		case statusCached:
			icon, st, suffix = style.Tilde, m.styles.cached, " (cached)"
		case statusFailed:
			icon, st = style.Cross, m.styles.failed
			if first, _, _ := strings.Cut(v.Err, "\n"); first != "" {
				suffix = ": " + first
			}
		default:
			icon, st, suffix = style.Dot, m.styles.running, " (canceled)"
		}
		fmt.Fprintf(&s, "%s %s%s\n", st.Render(icon), v.Name, suffix)
	}

	if m.ended && m.tape != nil && m.tape.TotalCount() > 0 {
		s.WriteString(m.styles.summary.Render(fmt.Sprintf("%d cases, %d cached, %d errored",
			m.tape.TotalCount(), m.tape.CachedCount(), m.tape.ErroredCount())))
		s.WriteString("\n")
	}
	return s.String()
}
