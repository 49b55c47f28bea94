// Package progrock records case evaluation progress on a progrock tape.
package progrock

import (
	"context"
	"errors"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/utext/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Renderer displays a recording session as it happens. Render returns once
// src is exhausted.
type Renderer interface {
	Render(src progrock.Reader, tape *progrock.Tape) error
}

// Recorder implements ports.Telemetry using progrock. A session is opened by
// the first Record and ended by Close.
type Recorder struct {
	mu       sync.Mutex
	renderer Renderer
	session  *session
}

type session struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
	done chan error
}

// New creates a new Recorder that only keeps an in-memory tape.
func New() *Recorder {
	return NewRecorder(nil)
}

// NewRecorder creates a new Recorder streaming each session to renderer.
func NewRecorder(renderer Renderer) *Recorder {
	return &Recorder{renderer: renderer}
}

func (r *Recorder) current() *session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.session != nil {
		return r.session
	}

	tape := progrock.NewTape()
	s := &session{tape: tape}

	var w progrock.Writer = tape
	if r.renderer != nil {
		src, sink := progrock.Pipe()
		w = progrock.MultiWriter{tape, sink}
		s.done = make(chan error, 1)
		go func() { s.done <- r.renderer.Render(src, tape) }()
	}
	s.rec = progrock.NewRecorder(w)

	r.session = s
	return s
}

// Record starts a vertex named after the case and attaches it to ctx.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := &Vertex{vertex: r.current().rec.Vertex(digest.FromString(name), name)}
	return ports.ContextWithVertex(ctx, v), v
}

// Tape returns the tape of the open session, or nil.
func (r *Recorder) Tape() *progrock.Tape {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil
	}
	return r.session.tape
}

// Close ends the open session and waits for its renderer to finish.
func (r *Recorder) Close() error {
	r.mu.Lock()
	s := r.session
	r.session = nil
	r.mu.Unlock()

	if s == nil {
		return nil
	}

	err := s.rec.Close()
	if s.done != nil {
		if rerr := <-s.done; rerr != nil {
			err = errors.Join(err, zerr.Wrap(rerr, "renderer failed"))
		}
	}
	return err
}
