// Package linear renders a check session as plain chronological lines, for CI
// logs and non-interactive terminals.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/utext/internal/ui/output"
	"go.trai.ch/utext/internal/ui/style"
)

// Renderer prints one line per finished case and one per case log line.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w. A nil writer selects os.Stderr.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{out: output.NewWithProfile(w, output.ColorProfileANSI)}
}

// Render consumes src until it is exhausted, then prints the session totals
// held by tape.
func (r *Renderer) Render(src progrock.Reader, tape *progrock.Tape) error {
	names := make(map[string]string)
	finished := make(map[string]bool)

	for {
		update, ok := src.ReadStatus()
		if !ok {
			break
		}

		for _, log := range update.Logs {
			if err := r.printLog(names[log.Vertex], log.Data); err != nil {
				return err
			}
		}
		for _, v := range update.Vertexes {
			names[v.Id] = v.Name
			if v.Completed == nil || finished[v.Id] {
				continue
			}
			finished[v.Id] = true
			if err := r.printVertex(v); err != nil {
				return err
			}
		}
	}

	return r.printSummary(tape)
}

func (r *Renderer) printLog(name string, data []byte) error {
	prefix := r.out.String(fmt.Sprintf("[%s]", name)).Faint().String()
	for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
		if line == "" {
			continue
		}
		if _, err := fmt.Fprintf(r.out, "%s %s\n", prefix, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) printVertex(v *progrock.Vertex) error {
	var line string
	var color termenv.Color

	switch {
	case v.Error != nil:
		msg := strings.ReplaceAll(v.GetError(), "\n", "\n  ")
		line = fmt.Sprintf("%s %s: %s", style.Cross, v.Name, msg)
		color = termenv.ANSIRed
	case v.Canceled:
		line = fmt.Sprintf("%s %s (canceled)", style.Dot, v.Name)
		color = termenv.ANSIYellow
	case v.Cached:
		line = fmt.Sprintf("%s %s (cached)", style.Tilde, v.Name)
		color = termenv.ANSIBrightBlack
	default:
		line = fmt.Sprintf("%s %s", style.Check, v.Name)
		color = termenv.ANSIGreen
	}

	_, err := fmt.Fprintln(r.out, r.out.String(line).Foreground(color).String())
	return err
}

func (r *Renderer) printSummary(tape *progrock.Tape) error {
	if tape == nil || tape.TotalCount() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(r.out, "%d cases, %d cached, %d errored\n",
		tape.TotalCount(), tape.CachedCount(), tape.ErroredCount())
	return err
}
