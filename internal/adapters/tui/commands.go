// Package tui renders a check session as a live terminal view.
package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vito/progrock"
)

// TapeSource yields status updates until it returns io.EOF.
type TapeSource interface {
	Read() (*progrock.StatusUpdate, error)
}

// readerSource adapts a progrock.Reader to TapeSource.
type readerSource struct {
	r progrock.Reader
}

// NewTapeSource wraps r as a TapeSource.
func NewTapeSource(r progrock.Reader) TapeSource {
	return readerSource{r: r}
}

func (s readerSource) Read() (*progrock.StatusUpdate, error) {
	update, ok := s.r.ReadStatus()
	if !ok {
		return nil, io.EOF
	}
	return update, nil
}

// WaitForTape returns a command that reads the next update from tape.
// Any read error ends the stream.
func WaitForTape(tape TapeSource) tea.Cmd {
	return func() tea.Msg {
		update, err := tape.Read()
		if err != nil {
			return MsgTapeEnded{}
		}
		return MsgTapeUpdate{Update: update}
	}
}
