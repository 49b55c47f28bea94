package linear_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/utext/internal/adapters/linear"
)

// recordSession writes a finished session to a fresh tape and returns the
// tape together with the update stream.
func recordSession(t *testing.T, record func(rec *progrock.Recorder)) (progrock.Reader, *progrock.Tape) {
	t.Helper()
	tape := progrock.NewTape()
	src, sink := progrock.Pipe()
	rec := progrock.NewRecorder(progrock.MultiWriter{tape, sink})
	record(rec)
	require.NoError(t, rec.Close())
	return src, tape
}

func TestRenderer_Session(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	src, tape := recordSession(t, func(rec *progrock.Recorder) {
		fresh := rec.Vertex(digest.FromString("fresh"), "fresh")
		_, _ = fmt.Fprintln(fresh.Stdout(), "recorded golden hash 6b2d5e09")
		fresh.Done(nil)

		golden := rec.Vertex(digest.FromString("golden"), "golden")
		golden.Cached()
		golden.Done(nil)

		broken := rec.Vertex(digest.FromString("broken"), "broken")
		broken.Done(errors.New("mismatch: expectation not met"))
	})

	var buf bytes.Buffer
	require.NoError(t, linear.NewRenderer(&buf).Render(src, tape))

	g := goldie.New(t)
	g.Assert(t, "session", buf.Bytes())
}

func TestRenderer_Canceled(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	src, tape := recordSession(t, func(rec *progrock.Recorder) {
		rec.Vertex(digest.FromString("slow"), "slow").Done(context.Canceled)
	})

	var buf bytes.Buffer
	require.NoError(t, linear.NewRenderer(&buf).Render(src, tape))
	assert.Equal(t, "• slow (canceled)\n1 cases, 0 cached, 0 errored\n", buf.String())
}

func TestRenderer_EmptySession(t *testing.T) {
	src, tape := recordSession(t, func(*progrock.Recorder) {})

	var buf bytes.Buffer
	require.NoError(t, linear.NewRenderer(&buf).Render(src, tape))
	assert.Empty(t, buf.String())
}
