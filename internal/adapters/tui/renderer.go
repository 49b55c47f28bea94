package tui

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// Renderer runs a Model for each session.
type Renderer struct {
	opts []tea.ProgramOption
}

// NewRenderer creates a Renderer drawing on w. A nil writer selects os.Stderr.
func NewRenderer(w io.Writer, opts ...tea.ProgramOption) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{opts: append([]tea.ProgramOption{tea.WithOutput(w)}, opts...)}
}

// Render runs the view until src is exhausted or the user quits.
func (r *Renderer) Render(src progrock.Reader, tape *progrock.Tape) error {
	program := tea.NewProgram(NewModel(NewTapeSource(src), tape), r.opts...)
	_, err := program.Run()
	return err
}
